package config

import (
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port           string `yaml:"port"`
	ThreadsPerPage int    `yaml:"threads_per_page"`
	PreviewPosts   int    `yaml:"preview_posts"` // earliest posts shown per thread on a board page
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	UploadDir      string `yaml:"upload_dir"`
	TemplatesDir   string `yaml:"templates_dir"`
	StaticDir      string `yaml:"static_dir"`
	LogLevel       string `yaml:"log_level"`
	LogJSON        bool   `yaml:"log_json"`
}

type Private struct {
	DatabaseURL string `yaml:"database_url"`
}

func (c *Config) DatabaseURL() string {
	return c.private.DatabaseURL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	applyEnvOverrides(cfg)
	cfg.private.DatabaseURL = normalizeDatabaseURL(cfg.private.DatabaseURL)
	if cfg.private.DatabaseURL == "" {
		panic("database url is not configured (private.yaml database_url or DATABASE_URL)")
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Public.Port = port
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.private.DatabaseURL = dbURL
	}
}

// normalizeDatabaseURL rewrites the legacy postgres:// scheme that some
// providers hand out to the postgresql:// form the driver documents.
func normalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}
