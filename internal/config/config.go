package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	ServerPort string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	// StorageType selects the attachment backend: "local" or "minio".
	StorageType string
	UploadRoot  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	AllowedOrigin string

	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "bsrealty")
	ServerPort = getEnv("SERVER_PORT", "5000")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "bsrealty")

	StorageType = getEnv("STORAGE_TYPE", "local")
	// stored references already carry the uploads/ prefix, so the
	// default base is the working directory
	UploadRoot = getEnv("UPLOAD_ROOT", ".")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "bsrealty-uploads")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	AllowedOrigin = getEnv("ALLOWED_ORIGIN", "")

	SeedAdminEmail = getEnv("SEED_ADMIN_EMAIL", "")
	SeedAdminPassword = getEnv("SEED_ADMIN_PASSWORD", "")
	SeedAdminName = getEnv("SEED_ADMIN_NAME", "Site Admin")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
