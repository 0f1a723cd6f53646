package catalog

import "github.com/drstein77/marketcatalog/internal/models"

// builtin is the authored buyer catalog in display order. Several items are
// cross-listed under more than one slug with their own ids and prices.
var builtin = []Entry{
	{
		Slug:     "mobiles-tablets",
		Products: []models.Product{
			{
				ID:            1,
				Name:          "iPhone 15 Pro Max",
				Description:   "Latest Apple iPhone with A17 Pro chip, 6.7-inch Super Retina XDR display",
				Price:         39999,
				OriginalPrice: 45999,
				Rating:        4.8,
				ReviewCount:   1254,
				Image:         "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=400&h=400&fit=crop",
				Brand:         "Apple",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2,
				Name:          "Samsung Galaxy S24 Ultra",
				Description:   "Samsung flagship with Snapdragon 8 Gen 3, S Pen, and 200MP camera",
				Price:         34999,
				OriginalPrice: 39999,
				Rating:        4.7,
				ReviewCount:   987,
				Image:         "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400&h=400&fit=crop",
				Brand:         "Samsung",
				InStock:       true,
				Delivery:      "FREE delivery by Monday",
			},
			{
				ID:            3,
				Name:          "Google Pixel 8 Pro",
				Description:   "Google's flagship with Tensor G3 chip and advanced AI camera features",
				Price:         32999,
				OriginalPrice: 37999,
				Rating:        4.6,
				ReviewCount:   765,
				Image:         "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=400&fit=crop",
				Brand:         "Google",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            4,
				Name:          "OnePlus 12",
				Description:   "Flagship killer with Snapdragon 8 Gen 3 and Hasselblad camera",
				Price:         27999,
				OriginalPrice: 31999,
				Rating:        4.5,
				ReviewCount:   543,
				Image:         "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=400&h=400&fit=crop",
				Brand:         "OnePlus",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            5,
				Name:          "iPad Pro 12.9-inch",
				Description:   "Apple's most advanced iPad with M2 chip and Liquid Retina XDR display",
				Price:         45999,
				OriginalPrice: 51999,
				Rating:        4.9,
				ReviewCount:   876,
				Image:         "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400&h=400&fit=crop",
				Brand:         "Apple",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "laptops-computers",
		Products: []models.Product{
			{
				ID:            101,
				Name:          "MacBook Pro 16-inch",
				Description:   "Apple M3 Pro chip, 16-inch Liquid Retina XDR display",
				Price:         89999,
				OriginalPrice: 99999,
				Rating:        4.9,
				ReviewCount:   432,
				Image:         "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400&h=400&fit=crop",
				Brand:         "Apple",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            102,
				Name:          "Dell XPS 15",
				Description:   "Intel Core i9, 15.6-inch OLED display, NVIDIA RTX 4060",
				Price:         64999,
				OriginalPrice: 72999,
				Rating:        4.7,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1593640408182-31c70c8268f5?w=400&h=400&fit=crop",
				Brand:         "Dell",
				InStock:       true,
				Delivery:      "FREE delivery in 2 days",
			},
			{
				ID:            103,
				Name:          "HP Spectre x360",
				Description:   "2-in-1 laptop with OLED touchscreen, Intel Core i7",
				Price:         54999,
				OriginalPrice: 61999,
				Rating:        4.6,
				ReviewCount:   287,
				Image:         "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=400&fit=crop",
				Brand:         "HP",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            104,
				Name:          "Lenovo ThinkPad X1 Carbon",
				Description:   "Business laptop with Intel Core i7, 14-inch display",
				Price:         58999,
				OriginalPrice: 65999,
				Rating:        4.8,
				ReviewCount:   198,
				Image:         "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400&h=400&fit=crop",
				Brand:         "Lenovo",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "tvs-entertainment",
		Products: []models.Product{
			{
				ID:            201,
				Name:          "Samsung 75-inch QLED 4K TV",
				Description:   "Quantum HDR, Smart TV with Alexa Built-in",
				Price:         79999,
				OriginalPrice: 89999,
				Rating:        4.8,
				ReviewCount:   543,
				Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=400&fit=crop",
				Brand:         "Samsung",
				InStock:       true,
				Delivery:      "FREE delivery in 3 days",
			},
			{
				ID:            202,
				Name:          "LG 65-inch OLED 4K TV",
				Description:   "OLED evo, α9 AI Processor 4K Gen6",
				Price:         89999,
				OriginalPrice: 99999,
				Rating:        4.9,
				ReviewCount:   432,
				Image:         "https://images.unsplash.com/photo-1593640408182-31c70c8268f5?w=400&h=400&fit=crop",
				Brand:         "LG",
				InStock:       true,
				Delivery:      "FREE delivery in 3 days",
			},
		},
	},
	{
		Slug:     "cameras-accessories",
		Products: []models.Product{
			{
				ID:            301,
				Name:          "Canon EOS R5",
				Description:   "Full-frame mirrorless camera, 45MP, 8K video",
				Price:         119999,
				OriginalPrice: 139999,
				Rating:        4.9,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400&h=400&fit=crop",
				Brand:         "Canon",
				InStock:       true,
				Delivery:      "FREE delivery in 4 days",
			},
			{
				ID:            302,
				Name:          "Sony Alpha 7 IV",
				Description:   "33MP full-frame mirrorless camera",
				Price:         89999,
				OriginalPrice: 99999,
				Rating:        4.8,
				ReviewCount:   287,
				Image:         "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=400&h=400&fit=crop",
				Brand:         "Sony",
				InStock:       true,
				Delivery:      "FREE delivery in 3 days",
			},
		},
	},
	{
		Slug:     "smartwatches-wearables",
		Products: []models.Product{
			{
				ID:            401,
				Name:          "Apple Watch Series 9",
				Description:   "GPS + Cellular, 45mm, Midnight Aluminum Case",
				Price:         19999,
				OriginalPrice: 22999,
				Rating:        4.8,
				ReviewCount:   654,
				Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop",
				Brand:         "Apple",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            402,
				Name:          "Samsung Galaxy Watch 6",
				Description:   "44mm, Bluetooth, Fitness Tracker",
				Price:         14999,
				OriginalPrice: 17999,
				Rating:        4.7,
				ReviewCount:   432,
				Image:         "https://images.unsplash.com/photo-1551816230-ef5deaed4a26?w=400&h=400&fit=crop",
				Brand:         "Samsung",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "headphones-speakers",
		Products: []models.Product{
			{
				ID:            501,
				Name:          "Sony WH-1000XM5",
				Description:   "Wireless Noise Cancelling Headphones",
				Price:         12999,
				OriginalPrice: 14999,
				Rating:        4.9,
				ReviewCount:   876,
				Image:         "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400&h=400&fit=crop",
				Brand:         "Sony",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            502,
				Name:          "Apple AirPods Pro (2nd Gen)",
				Description:   "Active Noise Cancellation, Adaptive Transparency",
				Price:         9999,
				OriginalPrice: 11999,
				Rating:        4.8,
				ReviewCount:   987,
				Image:         "https://images.unsplash.com/photo-1593358167138-43cce00dadd5?w=400&h=400&fit=crop",
				Brand:         "Apple",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "gaming-consoles",
		Products: []models.Product{
			{
				ID:            601,
				Name:          "PlayStation 5",
				Description:   "Ultra-high speed SSD, 4K gaming",
				Price:         24999,
				OriginalPrice: 27999,
				Rating:        4.9,
				ReviewCount:   765,
				Image:         "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400&h=400&fit=crop",
				Brand:         "Sony",
				InStock:       true,
				Delivery:      "FREE delivery in 2 days",
			},
			{
				ID:            602,
				Name:          "Xbox Series X",
				Description:   "4K gaming, 1TB SSD, 12 teraflops",
				Price:         22999,
				OriginalPrice: 25999,
				Rating:        4.8,
				ReviewCount:   543,
				Image:         "https://images.unsplash.com/photo-1621259182978-fbf83132d5c2?w=400&h=400&fit=crop",
				Brand:         "Microsoft",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "womens-fashion",
		Products: []models.Product{
			{
				ID:            701,
				Name:          "Women's Summer Dress",
				Description:   "Floral print, cotton blend, midi length",
				Price:         1299,
				OriginalPrice: 1999,
				Rating:        4.5,
				ReviewCount:   432,
				Image:         "https://images.unsplash.com/photo-1567095761054-7a02e69e5c43?w=400&h=400&fit=crop",
				Brand:         "Zara",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            702,
				Name:          "Women's Leather Handbag",
				Description:   "Genuine leather, crossbody, multiple compartments",
				Price:         2499,
				OriginalPrice: 3499,
				Rating:        4.7,
				ReviewCount:   287,
				Image:         "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=400&fit=crop",
				Brand:         "Michael Kors",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "mens-fashion",
		Products: []models.Product{
			{
				ID:            801,
				Name:          "Men's Casual Shirt",
				Description:   "100% cotton, slim fit, regular collar",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.4,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=400&h=400&fit=crop",
				Brand:         "H&M",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            802,
				Name:          "Men's Leather Shoes",
				Description:   "Genuine leather, formal, cushioned insole",
				Price:         1999,
				OriginalPrice: 2799,
				Rating:        4.6,
				ReviewCount:   198,
				Image:         "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=400&fit=crop",
				Brand:         "Clarks",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "kids-baby",
		Products: []models.Product{
			{
				ID:            901,
				Name:          "Baby Onesies Pack (3 Pieces)",
				Description:   "100% cotton, soft fabric, snap closures",
				Price:         699,
				OriginalPrice: 999,
				Rating:        4.7,
				ReviewCount:   154,
				Image:         "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=400&h=400&fit=crop",
				Brand:         "Carter's",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            902,
				Name:          "Kids School Backpack",
				Description:   "Water-resistant, multiple compartments, ergonomic straps",
				Price:         1299,
				OriginalPrice: 1799,
				Rating:        4.5,
				ReviewCount:   87,
				Image:         "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?w=400&h=400&fit=crop",
				Brand:         "Wildcraft",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "skincare",
		Products: []models.Product{
			{
				ID:            1001,
				Name:          "Vitamin C Serum",
				Description:   "Brightening serum with hyaluronic acid, 30ml",
				Price:         1299,
				OriginalPrice: 1799,
				Rating:        4.8,
				ReviewCount:   432,
				Image:         "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?w=400&h=400&fit=crop",
				Brand:         "The Ordinary",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1002,
				Name:          "SPF 50+ Sunscreen",
				Description:   "Non-greasy, water-resistant, 50ml",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.7,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?w=400&h=400&fit=crop",
				Brand:         "Neutrogena",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "makeup",
		Products: []models.Product{
			{
				ID:            1101,
				Name:          "Matte Lipstick Set (6 Shades)",
				Description:   "Long-lasting, vegan, cruelty-free",
				Price:         1499,
				OriginalPrice: 2199,
				Rating:        4.6,
				ReviewCount:   287,
				Image:         "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=400&fit=crop",
				Brand:         "Maybelline",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1102,
				Name:          "Foundation with SPF 30",
				Description:   "Full coverage, natural finish, 30ml",
				Price:         1799,
				OriginalPrice: 2399,
				Rating:        4.5,
				ReviewCount:   198,
				Image:         "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=400&fit=crop",
				Brand:         "L'Oreal",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "haircare",
		Products: []models.Product{
			{
				ID:            1201,
				Name:          "Anti-Dandruff Shampoo",
				Description:   "With ketoconazole, 200ml",
				Price:         499,
				OriginalPrice: 699,
				Rating:        4.4,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400&h=400&fit=crop",
				Brand:         "Head & Shoulders",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1202,
				Name:          "Hair Growth Serum",
				Description:   "With biotin and keratin, 60ml",
				Price:         999,
				OriginalPrice: 1499,
				Rating:        4.3,
				ReviewCount:   154,
				Image:         "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400&h=400&fit=crop",
				Brand:         "Biotin",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "fragrances",
		Products: []models.Product{
			{
				ID:            1301,
				Name:          "Men's Eau de Toilette",
				Description:   "Woody fragrance, 100ml",
				Price:         2999,
				OriginalPrice: 3999,
				Rating:        4.7,
				ReviewCount:   432,
				Image:         "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400&h=400&fit=crop",
				Brand:         "Davidoff",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1302,
				Name:          "Women's Perfume",
				Description:   "Floral scent, 50ml",
				Price:         3499,
				OriginalPrice: 4499,
				Rating:        4.8,
				ReviewCount:   287,
				Image:         "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400&h=400&fit=crop",
				Brand:         "Chanel",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "bath-body",
		Products: []models.Product{
			{
				ID:            1401,
				Name:          "Body Wash Gift Set",
				Description:   "3 scents, 250ml each, with loofah",
				Price:         1299,
				OriginalPrice: 1799,
				Rating:        4.6,
				ReviewCount:   198,
				Image:         "https://images.unsplash.com/photo-1596703923338-48f1c07e4f2e?w=400&h=400&fit=crop",
				Brand:         "Dove",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1402,
				Name:          "Luxury Bath Bombs (6 Pieces)",
				Description:   "Essential oils, moisturizing, various scents",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.7,
				ReviewCount:   154,
				Image:         "https://images.unsplash.com/photo-1596703923338-48f1c07e4f2e?w=400&h=400&fit=crop",
				Brand:         "Lush",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "health-wellness",
		Products: []models.Product{
			{
				ID:            1501,
				Name:          "Digital Thermometer",
				Description:   "Fast reading, fever alarm, memory function",
				Price:         499,
				OriginalPrice: 799,
				Rating:        4.5,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=400&fit=crop",
				Brand:         "Omron",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1502,
				Name:          "Vitamin D3 Supplements",
				Description:   "60 capsules, 2000 IU per capsule",
				Price:         699,
				OriginalPrice: 999,
				Rating:        4.6,
				ReviewCount:   287,
				Image:         "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=400&fit=crop",
				Brand:         "Nature Made",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "womens-clothing",
		Products: []models.Product{
			{
				ID:            1601,
				Name:          "Women's Summer Dress",
				Description:   "Floral print, cotton blend, midi length",
				Price:         1299,
				OriginalPrice: 1999,
				Rating:        4.5,
				ReviewCount:   432,
				Image:         "https://images.unsplash.com/photo-1567095761054-7a02e69e5c43?w=400&h=400&fit=crop",
				Brand:         "Zara",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1602,
				Name:          "Women's Blouse",
				Description:   "Silk material, elegant design, perfect for office",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.3,
				ReviewCount:   198,
				Image:         "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=400&h=400&fit=crop",
				Brand:         "Mango",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1603,
				Name:          "Women's Jeans",
				Description:   "High-waisted, skinny fit, stretch denim",
				Price:         1599,
				OriginalPrice: 2199,
				Rating:        4.6,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=400&h=400&fit=crop",
				Brand:         "Levi's",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "womens-shoes",
		Products: []models.Product{
			{
				ID:            1701,
				Name:          "Women's High Heels",
				Description:   "Leather, 3-inch heel, comfortable padding",
				Price:         2499,
				OriginalPrice: 3299,
				Rating:        4.4,
				ReviewCount:   187,
				Image:         "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=400&h=400&fit=crop",
				Brand:         "Steve Madden",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1702,
				Name:          "Women's Sneakers",
				Description:   "Running shoes, breathable mesh, memory foam",
				Price:         1799,
				OriginalPrice: 2399,
				Rating:        4.7,
				ReviewCount:   256,
				Image:         "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=400&h=400&fit=crop",
				Brand:         "Nike",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "womens-bags",
		Products: []models.Product{
			{
				ID:            1801,
				Name:          "Women's Leather Handbag",
				Description:   "Genuine leather, crossbody, multiple compartments",
				Price:         3499,
				OriginalPrice: 4499,
				Rating:        4.7,
				ReviewCount:   287,
				Image:         "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=400&fit=crop",
				Brand:         "Michael Kors",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1802,
				Name:          "Women's Tote Bag",
				Description:   "Canvas material, spacious, laptop compartment",
				Price:         1299,
				OriginalPrice: 1799,
				Rating:        4.5,
				ReviewCount:   143,
				Image:         "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=400&fit=crop",
				Brand:         "H&M",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "womens-jewelry",
		Products: []models.Product{
			{
				ID:            1901,
				Name:          "Gold Plated Necklace",
				Description:   "18K gold plating, pendant included",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.6,
				ReviewCount:   98,
				Image:         "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=400&fit=crop",
				Brand:         "Pandora",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            1902,
				Name:          "Silver Earrings",
				Description:   "Sterling silver, hypoallergenic",
				Price:         599,
				OriginalPrice: 899,
				Rating:        4.4,
				ReviewCount:   76,
				Image:         "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=400&fit=crop",
				Brand:         "Swarovski",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "mens-clothing",
		Products: []models.Product{
			{
				ID:            2001,
				Name:          "Men's Casual Shirt",
				Description:   "100% cotton, slim fit, regular collar",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.4,
				ReviewCount:   321,
				Image:         "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=400&h=400&fit=crop",
				Brand:         "H&M",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2002,
				Name:          "Men's T-Shirt Pack (3)",
				Description:   "Cotton blend, crew neck, assorted colors",
				Price:         1299,
				OriginalPrice: 1899,
				Rating:        4.5,
				ReviewCount:   198,
				Image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
				Brand:         "Puma",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2003,
				Name:          "Men's Formal Suit",
				Description:   "Wool blend, 2-piece, various sizes",
				Price:         8999,
				OriginalPrice: 11999,
				Rating:        4.8,
				ReviewCount:   87,
				Image:         "https://images.unsplash.com/photo-1594938354285-6a8c5c339d6f?w=400&h=400&fit=crop",
				Brand:         "Raymond",
				InStock:       true,
				Delivery:      "FREE delivery in 3 days",
			},
		},
	},
	{
		Slug:     "mens-shoes",
		Products: []models.Product{
			{
				ID:            2101,
				Name:          "Men's Leather Shoes",
				Description:   "Genuine leather, formal, cushioned insole",
				Price:         2999,
				OriginalPrice: 3999,
				Rating:        4.6,
				ReviewCount:   198,
				Image:         "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=400&fit=crop",
				Brand:         "Clarks",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2102,
				Name:          "Men's Running Shoes",
				Description:   "Breathable mesh, shock absorption",
				Price:         3499,
				OriginalPrice: 4499,
				Rating:        4.7,
				ReviewCount:   265,
				Image:         "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=400&fit=crop",
				Brand:         "Adidas",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "mens-accessories",
		Products: []models.Product{
			{
				ID:            2201,
				Name:          "Men's Leather Wallet",
				Description:   "Genuine leather, multiple card slots",
				Price:         1299,
				OriginalPrice: 1899,
				Rating:        4.5,
				ReviewCount:   143,
				Image:         "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400&h=400&fit=crop",
				Brand:         "Tommy Hilfiger",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2202,
				Name:          "Men's Belt",
				Description:   "Leather, adjustable, buckle included",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.3,
				ReviewCount:   98,
				Image:         "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400&h=400&fit=crop",
				Brand:         "Allen Solly",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "mens-watches",
		Products: []models.Product{
			{
				ID:            2301,
				Name:          "Men's Analog Watch",
				Description:   "Stainless steel, water resistant",
				Price:         4499,
				OriginalPrice: 5999,
				Rating:        4.7,
				ReviewCount:   187,
				Image:         "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=400&h=400&fit=crop",
				Brand:         "Fossil",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2302,
				Name:          "Men's Smart Watch",
				Description:   "Fitness tracking, notifications, heart rate monitor",
				Price:         5999,
				OriginalPrice: 7999,
				Rating:        4.6,
				ReviewCount:   232,
				Image:         "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=400&h=400&fit=crop",
				Brand:         "Garmin",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "baby-clothing",
		Products: []models.Product{
			{
				ID:            2401,
				Name:          "Baby Onesies Pack (3 Pieces)",
				Description:   "100% cotton, soft fabric, snap closures",
				Price:         699,
				OriginalPrice: 999,
				Rating:        4.7,
				ReviewCount:   154,
				Image:         "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=400&h=400&fit=crop",
				Brand:         "Carter's",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2402,
				Name:          "Baby Romper Set",
				Description:   "Cotton, cute designs, easy to wear",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.6,
				ReviewCount:   87,
				Image:         "https://images.unsplash.com/photo-1535585209827-a15fcdbc4c2d?w=400&h=400&fit=crop",
				Brand:         "Mothercare",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "kids-toys",
		Products: []models.Product{
			{
				ID:            2501,
				Name:          "Educational Building Blocks",
				Description:   "100 pieces, various shapes and colors",
				Price:         1299,
				OriginalPrice: 1799,
				Rating:        4.8,
				ReviewCount:   143,
				Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=400&fit=crop",
				Brand:         "Lego",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2502,
				Name:          "Remote Control Car",
				Description:   "2.4GHz, rechargeable battery, LED lights",
				Price:         1999,
				OriginalPrice: 2799,
				Rating:        4.5,
				ReviewCount:   98,
				Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=400&fit=crop",
				Brand:         "Hot Wheels",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
	{
		Slug:     "school-bags",
		Products: []models.Product{
			{
				ID:            2601,
				Name:          "Kids School Backpack",
				Description:   "Water-resistant, multiple compartments, ergonomic straps",
				Price:         1299,
				OriginalPrice: 1799,
				Rating:        4.5,
				ReviewCount:   87,
				Image:         "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?w=400&h=400&fit=crop",
				Brand:         "Wildcraft",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
			{
				ID:            2602,
				Name:          "Kids Lunch Box Set",
				Description:   "Insulated, BPA free, includes water bottle",
				Price:         899,
				OriginalPrice: 1299,
				Rating:        4.4,
				ReviewCount:   65,
				Image:         "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?w=400&h=400&fit=crop",
				Brand:         "Tupperware",
				InStock:       true,
				Delivery:      "FREE delivery tomorrow",
			},
		},
	},
}
