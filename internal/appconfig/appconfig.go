package appconfig

import (
	"bytes"
	"errors"
	"html/template"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration details
type Config struct {
	Host       string         `yaml:"host"`
	BasePath   string         `yaml:"basePath"`
	DocsPath   string         `yaml:"docsPath"`
	StaticPath string         `yaml:"staticPath"`
	Database   DatabaseConfig `yaml:"database"`
}

// DatabaseConfig defines the database connection details
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Source string `yaml:"source"`
}

// LoadConfig loads and parses the configuration from a given file path.
// The file is treated as a template with environment variables available
// as data, so secrets can stay out of the file itself.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Error().Err(err).Msg("config file not provided")
		return nil, err
	}

	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Error().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	envVars := loadEnvVars()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envVars); err != nil {
		log.Error().Err(err).Msg("error executing config file template")
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.applyDefaults()

	// DATABASE_URL wins over the file so deploy environments can inject
	// the connection string directly.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.Database.Source = url
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.DocsPath == "" {
		c.DocsPath = "/docs"
	}
	if c.StaticPath == "" {
		c.StaticPath = "/static"
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
