package catalog

import "github.com/drstein77/marketcatalog/internal/models"

var taxonomy = []models.Category{
	{
		ID:       1,
		Name:     "Electronics",
		Slug:     "electronics",
		Icon:     "📱",
		Children: []models.Category{
			{
				ID:    101,
				Name:  "Mobiles & Tablets",
				Slug:  "mobiles-tablets",
				Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop",
			},
			{
				ID:    102,
				Name:  "Laptops & Computers",
				Slug:  "laptops-computers",
				Image: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=300&fit=crop",
			},
			{
				ID:    103,
				Name:  "TVs & Home Entertainment",
				Slug:  "tvs-entertainment",
				Image: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=300&fit=crop",
			},
			{
				ID:    104,
				Name:  "Cameras & Accessories",
				Slug:  "cameras-accessories",
				Image: "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400&h=300&fit=crop",
			},
			{
				ID:    105,
				Name:  "Smartwatches & Wearables",
				Slug:  "smartwatches-wearables",
				Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop",
			},
			{
				ID:    106,
				Name:  "Headphones & Speakers",
				Slug:  "headphones-speakers",
				Image: "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400&h=300&fit=crop",
			},
			{
				ID:    107,
				Name:  "Gaming Consoles & Accessories",
				Slug:  "gaming-consoles",
				Image: "https://images.unsplash.com/photo-1593305841991-05c297ba4575?w=400&h=300&fit=crop",
			},
		},
	},
	{
		ID:       2,
		Name:     "Fashion",
		Slug:     "fashion",
		Icon:     "👗",
		Children: []models.Category{
			{
				ID:       201,
				Name:     "Women's Fashion",
				Slug:     "womens-fashion",
				Image:    "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400&h=300&fit=crop",
				IsParent: true,
				Children: []models.Category{
					{
						ID:    2011,
						Name:  "Clothing",
						Slug:  "womens-clothing",
						Image: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=400&h=300&fit=crop",
					},
					{
						ID:    2012,
						Name:  "Shoes & Sandals",
						Slug:  "womens-shoes",
						Image: "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=400&h=300&fit=crop",
					},
					{
						ID:    2013,
						Name:  "Bags & Accessories",
						Slug:  "womens-bags",
						Image: "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=300&fit=crop",
					},
					{
						ID:    2014,
						Name:  "Jewelry & Watches",
						Slug:  "womens-jewelry",
						Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=300&fit=crop",
					},
				},
			},
			{
				ID:       202,
				Name:     "Men's Fashion",
				Slug:     "mens-fashion",
				Image:    "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=400&h=300&fit=crop",
				IsParent: true,
				Children: []models.Category{
					{
						ID:    2021,
						Name:  "Clothing",
						Slug:  "mens-clothing",
						Image: "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=400&h=300&fit=crop",
					},
					{
						ID:    2022,
						Name:  "Shoes & Sneakers",
						Slug:  "mens-shoes",
						Image: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=300&fit=crop",
					},
					{
						ID:    2023,
						Name:  "Wallets & Belts",
						Slug:  "mens-accessories",
						Image: "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400&h=300&fit=crop",
					},
					{
						ID:    2024,
						Name:  "Watches & Accessories",
						Slug:  "mens-watches",
						Image: "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=400&h=300&fit=crop",
					},
				},
			},
			{
				ID:       203,
				Name:     "Kids & Baby",
				Slug:     "kids-baby",
				Image:    "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=400&h=300&fit=crop",
				IsParent: true,
				Children: []models.Category{
					{
						ID:    2031,
						Name:  "Baby Clothing",
						Slug:  "baby-clothing",
						Image: "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=400&h=300&fit=crop",
					},
					{
						ID:    2032,
						Name:  "Toys & Games",
						Slug:  "kids-toys",
						Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=300&fit=crop",
					},
					{
						ID:    2033,
						Name:  "School Bags & Accessories",
						Slug:  "school-bags",
						Image: "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?w=400&h=300&fit=crop",
					},
				},
			},
		},
	},
	{
		ID:       3,
		Name:     "Beauty & Personal Care",
		Slug:     "beauty-personal-care",
		Icon:     "💄",
		Children: []models.Category{
			{
				ID:    301,
				Name:  "Skincare",
				Slug:  "skincare",
				Image: "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?w=400&h=300&fit=crop",
			},
			{
				ID:    302,
				Name:  "Makeup",
				Slug:  "makeup",
				Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=300&fit=crop",
			},
			{
				ID:    303,
				Name:  "Haircare",
				Slug:  "haircare",
				Image: "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400&h=300&fit=crop",
			},
			{
				ID:    304,
				Name:  "Fragrances",
				Slug:  "fragrances",
				Image: "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400&h=300&fit=crop",
			},
			{
				ID:    305,
				Name:  "Bath & Body",
				Slug:  "bath-body",
				Image: "https://images.unsplash.com/photo-1596703923338-48f1c07e4f2e?w=400&h=300&fit=crop",
			},
			{
				ID:    306,
				Name:  "Health & Wellness",
				Slug:  "health-wellness",
				Image: "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=400&h=300&fit=crop",
			},
		},
	},
	{
		ID:       4,
		Name:     "Home & Kitchen",
		Slug:     "home-kitchen",
		Icon:     "🏠",
		Children: []models.Category{
			{
				ID:    401,
				Name:  "Furniture",
				Slug:  "furniture",
				Image: "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400&h=300&fit=crop",
			},
			{
				ID:    402,
				Name:  "Kitchen Appliances",
				Slug:  "kitchen-appliances",
				Image: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
			},
			{
				ID:    403,
				Name:  "Cookware & Dining",
				Slug:  "cookware-dining",
				Image: "https://images.unsplash.com/photo-1540910419892-4a36d2c3266c?w=400&h=300&fit=crop",
			},
			{
				ID:    404,
				Name:  "Home Décor",
				Slug:  "home-decor",
				Image: "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?w=400&h=300&fit=crop",
			},
			{
				ID:    405,
				Name:  "Storage & Organization",
				Slug:  "storage-organization",
				Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
			},
			{
				ID:    406,
				Name:  "Cleaning Supplies",
				Slug:  "cleaning-supplies",
				Image: "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=400&h=300&fit=crop",
			},
		},
	},
	{
		ID:       5,
		Name:     "Supermarket & Grocery",
		Slug:     "supermarket-grocery",
		Icon:     "🛒",
		Children: []models.Category{
			{
				ID:    501,
				Name:  "Fresh Food",
				Slug:  "fresh-food",
				Image: "https://images.unsplash.com/photo-1542838132-92c53300491e?w=400&h=300&fit=crop",
			},
			{
				ID:    502,
				Name:  "Snacks & Beverages",
				Slug:  "snacks-beverages",
				Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400&h=300&fit=crop",
			},
			{
				ID:    503,
				Name:  "Pantry Staples",
				Slug:  "pantry-staples",
				Image: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
			},
			{
				ID:    504,
				Name:  "Cleaning & Household Essentials",
				Slug:  "household-essentials",
				Image: "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=400&h=300&fit=crop",
			},
			{
				ID:    505,
				Name:  "Pet Supplies",
				Slug:  "pet-supplies",
				Image: "https://images.unsplash.com/photo-1558929996-da64ba858215?w=400&h=300&fit=crop",
			},
		},
	},
	{
		ID:       6,
		Name:     "Sports & Outdoors",
		Slug:     "sports-outdoors",
		Icon:     "⚽",
		Children: []models.Category{
			{
				ID:    601,
				Name:  "Fitness Equipment",
				Slug:  "fitness-equipment",
				Image: "https://images.unsplash.com/photo-1536922246289-88c42f957773?w=400&h=300&fit=crop",
			},
			{
				ID:    602,
				Name:  "Sportswear",
				Slug:  "sportswear",
				Image: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop",
			},
			{
				ID:    603,
				Name:  "Camping & Hiking Gear",
				Slug:  "camping-hiking",
				Image: "https://images.unsplash.com/photo-1504851149312-7a075b496cc7?w=400&h=300&fit=crop",
			},
			{
				ID:    604,
				Name:  "Bicycles & Accessories",
				Slug:  "bicycles-accessories",
				Image: "https://images.unsplash.com/photo-1485965120184-e220f721d03e?w=400&h=300&fit=crop",
			},
		},
	},
	{
		ID:       7,
		Name:     "Books & Stationery",
		Slug:     "books-stationery",
		Icon:     "📚",
		Children: []models.Category{
			{
				ID:    701,
				Name:  "Fiction Books",
				Slug:  "fiction-books",
				Image: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=300&fit=crop",
			},
			{
				ID:    702,
				Name:  "Non-fiction Books",
				Slug:  "nonfiction-books",
				Image: "https://images.unsplash.com/photo-1541963463532-d68292c34b19?w=400&h=300&fit=crop",
			},
			{
				ID:    703,
				Name:  "Academic Books",
				Slug:  "academic-books",
				Image: "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?w=400&h=300&fit=crop",
			},
			{
				ID:    704,
				Name:  "Office Supplies",
				Slug:  "office-supplies",
				Image: "https://images.unsplash.com/photo-1586773860418-dc22f8b874bc?w=400&h=300&fit=crop",
			},
			{
				ID:    705,
				Name:  "Art & Craft Materials",
				Slug:  "art-craft",
				Image: "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=400&h=300&fit=crop",
			},
		},
	},
	{
		ID:       8,
		Name:     "Toys & Games",
		Slug:     "toys-games",
		Icon:     "🎮",
		Children: []models.Category{
			{
				ID:    801,
				Name:  "Action Figures",
				Slug:  "action-figures",
				Image: "https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=400&h=300&fit=crop",
			},
			{
				ID:    802,
				Name:  "Educational Toys",
				Slug:  "educational-toys",
				Image: "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=300&fit=crop",
			},
			{
				ID:    803,
				Name:  "Board Games & Puzzles",
				Slug:  "board-games",
				Image: "https://images.unsplash.com/photo-1610890716171-6b1bb98ffd09?w=400&h=300&fit=crop",
			},
			{
				ID:    804,
				Name:  "Dolls & Stuffed Animals",
				Slug:  "dolls-stuffed",
				Image: "https://images.unsplash.com/photo-1531259683007-016a7b628fc3?w=400&h=300&fit=crop",
			},
		},
	},
	{
		ID:       9,
		Name:     "Health & Medical",
		Slug:     "health-medical",
		Icon:     "🏥",
		Children: []models.Category{
			{
				ID:    901,
				Name:  "Supplements & Vitamins",
				Slug:  "supplements-vitamins",
				Image: "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=300&fit=crop",
			},
			{
				ID:    902,
				Name:  "Medical Devices",
				Slug:  "medical-devices",
				Image: "https://images.unsplash.com/photo-1551601651-2a8555f1a136?w=400&h=300&fit=crop",
			},
			{
				ID:    903,
				Name:  "Personal Care Equipment",
				Slug:  "personal-care-equipment",
				Image: "https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=400&h=300&fit=crop",
			},
		},
	},
}
