package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REPORTS_DIR", "")
	t.Setenv("ANALYZER_USERS", "")

	cfg := GetAppConfig()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, map[string]string{
		"Madam":   "madam4321",
		"hr_user": "tecrix_hr",
	}, cfg.Users)
}

func TestGetUsers_FromEnvironment(t *testing.T) {
	t.Setenv("ANALYZER_USERS", "alice:pw1, bob:pw2,:skipme,badpair")

	cfg := GetAppConfig()
	assert.Equal(t, map[string]string{
		"alice": "pw1",
		"bob":   "pw2",
	}, cfg.Users)
}
