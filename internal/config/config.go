package config

import (
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	Mongo    Mongo
	UsersDB  MySQL `envPrefix:"MYSQL_USER_"`
	Payments MySQL `envPrefix:"MYSQL_PAYMENT_"`
}

type Mongo struct {
	URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DB_NAME" envDefault:"ecommerce"`
}

type MySQL struct {
	Host     string `env:"HOST" envDefault:"127.0.0.1:3306"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Database string `env:"DB"`
}

// Load charge le .env puis parse les variables d'environnement.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
