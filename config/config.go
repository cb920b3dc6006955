package config

import (
	"os"
	"strings"
)

// AppConfig holds all runtime configuration, loaded from environment
// variables with development defaults.
type AppConfig struct {
	Port        string
	JWTSecret   string
	Environment string
	ReportsDir  string
	Users       map[string]string
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnv("PORT", "8081"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		Environment: getEnv("ENVIRONMENT", "development"),
		ReportsDir:  getEnv("REPORTS_DIR", "reports"),
		Users:       getUsers(),
	}
}

// getUsers reads the credential mapping from ANALYZER_USERS as
// comma-separated "username:password" pairs, falling back to the built-in
// HR accounts when unset.
func getUsers() map[string]string {
	raw := os.Getenv("ANALYZER_USERS")
	if raw == "" {
		return map[string]string{
			"Madam":   "madam4321",
			"hr_user": "tecrix_hr",
		}
	}

	users := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		name, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" {
			continue
		}
		users[name] = password
	}
	return users
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
