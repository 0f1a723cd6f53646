package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Options struct {
	runAddr        string
	logLevel       string
	serviceName    string
	exportFile     string
	validateStrict bool
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments
// and stores their values in the corresponding variables.
func (o *Options) ParseFlags() {
	// Load environment variables from the .env file
	loadEnvFile()

	if err := o.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// Parse registers the options on fs with environment-derived defaults and
// parses args into them.
func (o *Options) Parse(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&o.runAddr, "a", getEnvOrDefault("RUN_ADDRESS", ":8080"), "address and port to run server")
	fs.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "info"), "log level")
	fs.StringVar(&o.serviceName, "s", getEnvOrDefault("SERVICE_NAME", "marketcatalog"), "service name used in metrics")
	fs.StringVar(&o.exportFile, "x", getEnvOrDefault("EXPORT_FILE", "products.csv"), "name of the CSV file inside export archives")
	fs.BoolVar(&o.validateStrict, "v", getEnvBool("VALIDATE_STRICT", false), "refuse to start when catalog validation reports errors")

	return fs.Parse(args)
}

func (o *Options) RunAddr() string {
	return o.runAddr
}

func (o *Options) LogLevel() string {
	return o.logLevel
}

func (o *Options) ServiceName() string {
	return o.serviceName
}

func (o *Options) ExportFile() string {
	return o.exportFile
}

func (o *Options) ValidateStrict() bool {
	return o.validateStrict
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnvOrDefault(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}

// loadEnvFile loads environment variables from a .env file in the working
// directory or two levels up (the layout used when running from cmd/).
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	for _, envPath := range []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "..", "..", ".env"),
	} {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf(".env file loaded from %s", envPath)
			return
		}
	}
	log.Printf("No .env file found near %s, proceeding without it", cwd)
}
