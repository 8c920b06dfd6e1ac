package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is loaded once at startup and injected into constructors; nothing
// reads the environment after this.
type Config struct {
	Port        string
	JWTSecret   string
	MySQLDSN    string
	MongoURI    string
	MongoDBName string
	FrontendURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using process environment")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: os.Getenv("MONGO_DB_NAME"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	if cfg.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is not set in environment")
	}
	if cfg.MySQLDSN == "" {
		log.Fatalf("MYSQL_DSN is not set in environment")
	}
	if cfg.MongoURI == "" {
		log.Fatalf("MONGO_URI is not set in environment")
	}
	if cfg.MongoDBName == "" {
		log.Fatalf("MONGO_DB_NAME is not set in environment")
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}

	return cfg
}
