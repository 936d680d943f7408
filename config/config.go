package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"

	AuthFirebase = "firebase"
	AuthJWT      = "jwt"
)

// Listing
const (
	PostsPageLimit = 5
)

type Config struct {
	Port        string
	StorageType string

	MongoURI string
	MongoDB  string

	AuthProvider            string
	AuthDisabled            bool
	JWTSecret               string
	FirebaseCredentialsFile string

	PaymentGatewayKey string

	ProfanityFilter  bool
	ProfanityWords   string
	CORSAllowOrigins string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		log.Printf("config: invalid bool for %s=%q, using %v", key, value, fallback)
		return fallback
	}
	return b
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration without touching .env files.
func FromEnv() Config {
	return Config{
		Port:        getEnv("PORT", "5000"),
		StorageType: strings.ToLower(getEnv("STORAGE_TYPE", StorageMongo)),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "threadHubDB"),

		AuthProvider:            strings.ToLower(getEnv("AUTH_PROVIDER", AuthJWT)),
		AuthDisabled:            getBool("AUTH_DISABLED", false),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "firebase_admin_sdk.json"),

		PaymentGatewayKey: getEnv("PAYMENT_GATEWAY_KEY", ""),

		ProfanityFilter:  getBool("PROFANITY_FILTER", false),
		ProfanityWords:   getEnv("PROFANITY_WORDS", ""),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}
}
