package utils

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
)

type Config struct {
	// Application
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Mailing configuration
	SMTPHost          string `yaml:"SMTP_HOST"`
	SMTPPort          string `yaml:"SMTP_PORT"`
	SMTPSenderName    string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail     string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword  string `yaml:"SMTP_AUTH_PASSWORD"`
	ImportNotifyEmail string `yaml:"IMPORT_NOTIFY_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

// LoadConfig reads config.yaml, falling back to .env and the process
// environment when the file is missing.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Infof("config.yaml not readable (%s), using environment", err)
		loadEnv()
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Errorf("Error parsing YAML file: %s", err)
		loadEnv()
	}
}

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file: %s", err)
	}

	config = Config{
		AppPort:           os.Getenv("APP_PORT"),
		AppURL:            os.Getenv("APP_URL"),
		DBUser:            os.Getenv("DB_USER"),
		DBName:            os.Getenv("DB_NAME"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBPort:            os.Getenv("DB_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		SMTPSenderName:    os.Getenv("SMTP_SENDER_NAME"),
		SMTPAuthEmail:     os.Getenv("SMTP_AUTH_EMAIL"),
		SMTPAuthPassword:  os.Getenv("SMTP_AUTH_PASSWORD"),
		ImportNotifyEmail: os.Getenv("IMPORT_NOTIFY_EMAIL"),
		AWSS3Bucket:       os.Getenv("AWS_S3_BUCKET"),
		AWSS3Region:       os.Getenv("AWS_S3_REGION"),
		AWSAccessKey:      os.Getenv("AWS_ACCESS_KEY"),
		AWSSecretKey:      os.Getenv("AWS_SECRET_KEY"),
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		if config.AppPort == "" {
			return "8080"
		}
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "IMPORT_NOTIFY_EMAIL":
		return config.ImportNotifyEmail
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
