// config.go
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	MongoURI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName     string        `env:"MONGO_DB_NAME" envDefault:"miniattic"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	JWTKey string        `env:"JWT_KEY"`
	JWTTTL time.Duration `env:"JWT_TTL" envDefault:"30m"`

	Access AccessLevels

	AllowCORS         bool   `env:"ALLOW_CORS" envDefault:"false"`
	CORSOriginKeyword string `env:"CORS_ORIGIN_KEYWORD" envDefault:"github"`

	// Vacío = sin mensajería
	RabbitURL string `env:"RABBIT_URL"`

	ImageDir       string `env:"IMAGE_DIR" envDefault:"images"`
	ImageBaseURL   string `env:"IMAGE_BASE_URL" envDefault:"/images/"`
	ImageMaxBytes  int64  `env:"IMAGE_MAX_BYTES" envDefault:"1048576"`
	ImageCacheSize int    `env:"IMAGE_CACHE_SIZE" envDefault:"256"`

	Collections Collections
}

// Niveles de acceso que viajan en el token
type AccessLevels struct {
	Administrator int `env:"ACCESS_RIGHT_ADMINISTRATOR" envDefault:"1"`
	Editor        int `env:"ACCESS_RIGHT_EDITOR" envDefault:"2"`
	User          int `env:"ACCESS_RIGHT_USER" envDefault:"3"`
}

type Collections struct {
	Order    string `env:"COLLECTION_ORDER" envDefault:"orders"`
	Product  string `env:"COLLECTION_PRODUCT" envDefault:"products"`
	Payment  string `env:"COLLECTION_PAYMENT" envDefault:"payments"`
	Category string `env:"COLLECTION_CATEGORY" envDefault:"categorys"`
	Page     string `env:"COLLECTION_PAGE" envDefault:"pages"`
	User     string `env:"COLLECTION_USER" envDefault:"users"`
}

// Load lee el .env (si existe) y luego las variables de entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	if cfg.JWTKey == "" {
		return nil, errors.New("JWT_KEY is required")
	}
	if cfg.ImageCacheSize <= 0 {
		return nil, errors.Errorf("IMAGE_CACHE_SIZE must be positive, got %d", cfg.ImageCacheSize)
	}

	return cfg, nil
}
