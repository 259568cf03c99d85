// Package config reads the server's runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// atlasURITemplate is the hosted cluster used when only DB_USER/DB_PASS are set
const atlasURITemplate = "mongodb+srv://%s:%s@cluster0.i6c2rzu.mongodb.net/?retryWrites=true&w=majority"

// ErrMissingSecret is returned when ACCESS_TOKEN_SECRET is unset
var ErrMissingSecret = errors.New("ACCESS_TOKEN_SECRET environment variable is required")

// Config holds runtime settings for the API server.
//
// Fields:
//   - Port: listening port.
//   - MongoURI / MongoDatabase: document store location.
//   - AccessTokenSecret: HMAC secret for signing tokens (HS256).
//   - LogLevel: minimum zerolog level.
//   - AllowedOrigins: CORS origins.
//   - SwaggerFile: path of the served OpenAPI document; SWAGGER_FILE=off disables it.
type Config struct {
	Port              string
	MongoURI          string
	MongoDatabase     string
	AccessTokenSecret string
	LogLevel          zerolog.Level
	AllowedOrigins    []string
	SwaggerFile       string
}

// LoadDefaults populates Config with development defaults
func (c *Config) LoadDefaults() {
	c.Port = "5000"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "inventifyHub"
	c.LogLevel = zerolog.InfoLevel
	c.AllowedOrigins = []string{"*"}
	c.SwaggerFile = "./docs/swagger.json"
}

// Load applies defaults and overlays the process environment
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if port := getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if uri := getenv("MONGODB_URI"); uri != "" {
		cfg.MongoURI = uri
	} else if user, pass := getenv("DB_USER"), getenv("DB_PASS"); user != "" && pass != "" {
		cfg.MongoURI = fmt.Sprintf(atlasURITemplate, url.QueryEscape(user), url.QueryEscape(pass))
	}

	if db := getenv("MONGODB_DATABASE"); db != "" {
		cfg.MongoDatabase = db
	}

	cfg.AccessTokenSecret = getenv("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "" {
		return nil, ErrMissingSecret
	}

	if lvl := getenv("LOG_LEVEL"); lvl != "" {
		level, err := zerolog.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", lvl, err)
		}
		cfg.LogLevel = level
	}

	if origins := getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	switch swagger := getenv("SWAGGER_FILE"); swagger {
	case "":
	case "off":
		cfg.SwaggerFile = ""
	default:
		cfg.SwaggerFile = swagger
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
