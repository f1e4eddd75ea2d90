package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdash-dev/mdash/internal/common"
	"github.com/mdash-dev/mdash/internal/report"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	viper.Set("moneydashboard.email", "user@example.com")
	viper.Set("moneydashboard.password", "hunter2")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", s.Client.Email)
	assert.Equal(t, "hunter2", s.Client.Password)
	assert.Equal(t, "GBP", s.Currency)
	assert.Equal(t, "en-GB", s.Locale)
	assert.True(t, s.FormatAsCurrency)
	assert.Equal(t, report.RequireBothFlags, s.InclusionPolicy)
	assert.Zero(t, s.Client.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	resetViper(t)
	viper.Set("moneydashboard.email", "user@example.com")
	viper.Set("moneydashboard.password", "hunter2")
	viper.Set("moneydashboard.base_url", "https://staging.example.com")
	viper.Set("moneydashboard.timeout", "5s")
	viper.Set("report.currency", "EUR")
	viper.Set("report.locale", "de-DE")
	viper.Set("report.format_as_currency", false)
	viper.Set("report.inclusion_policy", "cashflow")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", s.Client.BaseURL)
	assert.Equal(t, 5*time.Second, s.Client.Timeout)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, "de-DE", s.Locale)
	assert.False(t, s.FormatAsCurrency)
	assert.Equal(t, report.CashflowFlagOnly, s.InclusionPolicy)
}

func TestLoad_PasswordFile(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte("hunter2\n"), 0o600))

	viper.Set("moneydashboard.email", "user@example.com")
	viper.Set("moneydashboard.password_file", path)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", s.Client.Password)
}

func TestLoad_PasswordFileMissing(t *testing.T) {
	resetViper(t)
	viper.Set("moneydashboard.email", "user@example.com")
	viper.Set("moneydashboard.password_file", filepath.Join(t.TempDir(), "nope"))

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLoad_EnvironmentFallback(t *testing.T) {
	resetViper(t)
	t.Setenv("MONEYDASHBOARD_EMAIL", "env@example.com")
	t.Setenv("MONEYDASHBOARD_PASSWORD", "env-secret")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env@example.com", s.Client.Email)
	assert.Equal(t, "env-secret", s.Client.Password)
}

func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{name: "no email", setup: func() { viper.Set("moneydashboard.password", "hunter2") }},
		{name: "no password", setup: func() { viper.Set("moneydashboard.email", "user@example.com") }},
		{name: "nothing", setup: func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			tt.setup()

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMissingConfig)
		})
	}
}

func TestLoad_BadInclusionPolicy(t *testing.T) {
	resetViper(t)
	viper.Set("moneydashboard.email", "user@example.com")
	viper.Set("moneydashboard.password", "hunter2")
	viper.Set("report.inclusion_policy", "sometimes")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x"), ExpandPath("~/x"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/etc/mdash", ExpandPath("/etc/mdash"))

	t.Setenv("MDASH_TEST_DIR", "/opt/mdash")
	assert.Equal(t, "/opt/mdash/config", ExpandPath("$MDASH_TEST_DIR/config"))
}
