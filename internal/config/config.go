package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Config struct {
	Port              string
	WebshareUser      string
	WebsharePass      string
	WebshareCountries []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		WebshareUser: os.Getenv("WEBSHARE_USER"),
		WebsharePass: os.Getenv("WEBSHARE_PASS"),
	}

	if raw := os.Getenv("WEBSHARE_COUNTRIES"); raw != "" {
		for _, country := range strings.Split(raw, ",") {
			if country = strings.TrimSpace(country); country != "" {
				cfg.WebshareCountries = append(cfg.WebshareCountries, country)
			}
		}
	}

	// Proxy credentials are optional but must come as a pair
	if (cfg.WebshareUser == "") != (cfg.WebsharePass == "") {
		return nil, fmt.Errorf("WEBSHARE_USER and WEBSHARE_PASS must be set together")
	}

	return cfg, nil
}

// ProxyURL returns the Webshare rotating-gateway URL for the configured
// credentials, or nil when no proxy is configured. Country filters are
// appended to the proxy username (e.g. "user-us-de-rotate").
func (c *Config) ProxyURL() *url.URL {
	if c.WebshareUser == "" || c.WebsharePass == "" {
		return nil
	}

	user := c.WebshareUser
	for _, country := range c.WebshareCountries {
		user += "-" + country
	}
	user += "-rotate"

	return &url.URL{
		Scheme: "http",
		User:   url.UserPassword(user, c.WebsharePass),
		Host:   "p.webshare.io:80",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
