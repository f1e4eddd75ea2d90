package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdash-dev/mdash/internal/cli"
	"github.com/mdash-dev/mdash/internal/common"
	"github.com/mdash-dev/mdash/internal/model"
)

func balancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show aggregated account balances",
		Long: `Fetch all accounts from MoneyDashboard and show net, positive and
negative totals plus every non-closed account grouped by type.`,
		RunE: runBalances,
	}

	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	_ = viper.BindPFlag("balances.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runBalances(cmd *cobra.Command, _ []string) error {
	svc, err := newReportService()
	if err != nil {
		return err
	}

	summary, err := svc.Balances(cmd.Context())
	if err != nil {
		return common.NewUserError("could not fetch balances", err)
	}

	if viper.GetBool("balances.json") {
		return printJSON(summary)
	}

	printSummary(summary)
	return nil
}

func printSummary(summary *model.BalanceSummary) {
	fmt.Println(cli.FormatTitle("Balances"))
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Net:"), summary.NetBalance)
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Positive:"), summary.PositiveBalance)
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Negative:"), summary.NegativeBalance)

	printBucket("Current accounts", summary.Balances.CurrentAccounts)
	printBucket("Savings accounts", summary.Balances.SavingsAccounts)
	printBucket("Credit cards", summary.Balances.CreditCards)
	printBucket("Saving goals", summary.Balances.SavingGoals)
	printBucket("Other accounts", summary.Balances.OtherAccounts)
	printBucket("Unknown", summary.Balances.Unknown)
}

func printBucket(title string, entries []model.AccountBalance) {
	if len(entries) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(cli.FormatTitle(title))
	for _, e := range entries {
		fmt.Printf("  %s - %s: %s %s\n",
			e.Operator, e.Name, e.Balance,
			cli.FormatSubtle(fmt.Sprintf("(updated %s)", e.LastUpdate)))
	}
}
