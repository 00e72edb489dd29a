package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	AllowedOrigins []string
	RabbitMQURL    string
	LogLevel       string
}

// defaultOrigins is the frontend allow-list served when ALLOWED_ORIGINS
// is not set.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"https://sams-dev-proj.vercel.app",
	"https://sams-dev-proj-git-main-samuelmbayas-projects.vercel.app",
	"https://sams-dev-proj-er2q1po6e-samuelmbayas-projects.vercel.app",
}

// Load reads configuration from environment variables, falling back to
// built-in defaults. An empty RABBITMQ_URL disables order events.
func Load() *Config {
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "SneakerVerse")
	viper.SetDefault("ALLOWED_ORIGINS", strings.Join(defaultOrigins, ","))
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	return &Config{
		Port:           viper.GetString("PORT"),
		MongoURI:       viper.GetString("MONGODB_URI"),
		MongoDatabase:  viper.GetString("MONGODB_DATABASE"),
		AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
	}
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return ":" + c.Port
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
