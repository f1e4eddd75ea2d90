package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdash-dev/mdash/internal/cli"
	"github.com/mdash-dev/mdash/internal/common"
	"github.com/mdash-dev/mdash/internal/moneydashboard"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Show recent transactions",
		Long: `Fetch a filtered transaction list from MoneyDashboard and show it
with resolved account names and formatted amounts.`,
		RunE: runTransactions,
	}

	cmd.Flags().StringP("filter", "f", "last7days", "Transaction filter (last7days, sincelogin, untagged)")
	cmd.Flags().Bool("json", false, "Print the transactions as JSON")
	_ = viper.BindPFlag("transactions.filter", cmd.Flags().Lookup("filter"))
	_ = viper.BindPFlag("transactions.json", cmd.Flags().Lookup("json"))

	return cmd
}

// parseFilter maps the CLI filter names to the service's filter codes.
// Unknown names fail here, before anything touches the network.
func parseFilter(name string) (moneydashboard.TransactionFilter, error) {
	switch name {
	case "last7days":
		return moneydashboard.FilterLastSevenDays, nil
	case "sincelogin":
		return moneydashboard.FilterSinceLastLogin, nil
	case "untagged":
		return moneydashboard.FilterAllUntagged, nil
	}
	return 0, fmt.Errorf("unknown filter %q (want last7days, sincelogin or untagged)", name)
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	filter, err := parseFilter(viper.GetString("transactions.filter"))
	if err != nil {
		return err
	}

	svc, err := newReportService()
	if err != nil {
		return err
	}

	txns, err := svc.Transactions(cmd.Context(), filter)
	if err != nil {
		return common.NewUserError("could not fetch transactions", err)
	}

	if viper.GetBool("transactions.json") {
		return printJSON(txns)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Transactions (%s)", filter)))
	for _, t := range txns {
		fmt.Printf("  %s  %-6s %12s %s  %s\n",
			t.Date, t.Type, t.Amount, t.Currency, t.Account)
	}
	if len(txns) == 0 {
		fmt.Println(cli.FormatSubtle("  no transactions"))
	}
	return nil
}
