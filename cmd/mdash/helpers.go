package main

import (
	"encoding/json"
	"fmt"

	"github.com/mdash-dev/mdash/internal/config"
	"github.com/mdash-dev/mdash/internal/money"
	"github.com/mdash-dev/mdash/internal/moneydashboard"
	"github.com/mdash-dev/mdash/internal/report"
)

// newReportService wires config, client, formatter and report service
// for a command invocation.
func newReportService() (*report.Service, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := moneydashboard.NewClient(settings.Client)
	if err != nil {
		return nil, fmt.Errorf("failed to create MoneyDashboard client: %w", err)
	}

	formatter, err := money.New(settings.Currency, settings.Locale, settings.FormatAsCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency formatter: %w", err)
	}

	return report.NewService(client, formatter, settings.InclusionPolicy), nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
