package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mdash-dev/mdash/internal/common"
	"github.com/mdash-dev/mdash/internal/moneydashboard"
	"github.com/mdash-dev/mdash/internal/report"
)

// Settings is everything the CLI needs to build the client and the
// report pipeline.
type Settings struct {
	Client           moneydashboard.Config
	Currency         string
	Locale           string
	FormatAsCurrency bool
	InclusionPolicy  report.InclusionPolicy
}

// Load builds Settings with this precedence:
//  1. Viper configuration (config file or MDASH_ env vars)
//  2. Direct MONEYDASHBOARD_* environment variables
//  3. Defaults (GBP, en-GB, currency formatting on, both-flags policy)
//
// The password may also come from moneydashboard.password_file, read
// after ~ and $VAR expansion.
func Load() (*Settings, error) {
	s := &Settings{
		Currency:         "GBP",
		Locale:           "en-GB",
		FormatAsCurrency: true,
	}

	s.Client.Email = viper.GetString("moneydashboard.email")
	s.Client.Password = viper.GetString("moneydashboard.password")
	s.Client.BaseURL = viper.GetString("moneydashboard.base_url")
	if viper.IsSet("moneydashboard.timeout") {
		s.Client.Timeout = viper.GetDuration("moneydashboard.timeout")
	}

	if s.Client.Password == "" {
		if path := viper.GetString("moneydashboard.password_file"); path != "" {
			data, err := os.ReadFile(ExpandPath(path))
			if err != nil {
				return nil, fmt.Errorf("%w: reading password file: %w", common.ErrInvalidConfig, err)
			}
			s.Client.Password = strings.TrimSpace(string(data))
		}
	}

	// Direct environment variables fill whatever is still unset.
	if s.Client.Email == "" {
		s.Client.Email = os.Getenv("MONEYDASHBOARD_EMAIL")
	}
	if s.Client.Password == "" {
		s.Client.Password = os.Getenv("MONEYDASHBOARD_PASSWORD")
	}

	if v := viper.GetString("report.currency"); v != "" {
		s.Currency = v
	}
	if v := viper.GetString("report.locale"); v != "" {
		s.Locale = v
	}
	if viper.IsSet("report.format_as_currency") {
		s.FormatAsCurrency = viper.GetBool("report.format_as_currency")
	}

	policy, err := report.ParseInclusionPolicy(viper.GetString("report.inclusion_policy"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	s.InclusionPolicy = policy

	if s.Client.Email == "" {
		return nil, fmt.Errorf("%w: moneydashboard.email", common.ErrMissingConfig)
	}
	if s.Client.Password == "" {
		return nil, fmt.Errorf("%w: moneydashboard.password", common.ErrMissingConfig)
	}

	return s, nil
}
