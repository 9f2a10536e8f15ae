package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/spf13/cobra"

	"fintrack/ledger"
)

// budgetCmd represents the budget command.
var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget tracking commands",
	Long:  `Commands for inspecting per-category budget usage in the current period.`,
}

// budgetListCmd represents the budget list command.
var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budget status for every configured category",
	RunE:  budgetListRun,
}

// budgetShowCmd represents the budget show command.
var budgetShowCmd = &cobra.Command{
	Use:   "show <category>",
	Short: "Show budget status for one category",
	Args:  cobra.ExactArgs(1),
	RunE:  budgetShowRun,
}

func init() {
	budgetCmd.AddCommand(budgetListCmd)
	budgetCmd.AddCommand(budgetShowCmd)

	budgetListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	budgetShowCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func budgetListRun(cmd *cobra.Command, _ []string) error {
	_, r, err := loadReports()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case jsonOutputFormat:
		return outputJSON(r.current.Budgets)
	case tableOutputFormat:
		return outputBudgetTable(r.current.Budgets)
	default:
		return errors.New("unsupported output format")
	}
}

func budgetShowRun(cmd *cobra.Command, args []string) error {
	snap, r, err := loadReports()
	if err != nil {
		return err
	}

	windowed, err := ledger.EntriesInWindow(snap.Entries, r.period.start, r.period.end)
	if err != nil {
		return err
	}

	report, err := ledger.EvaluateBudget(windowed, snap.Limits, args[0])
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case jsonOutputFormat:
		return outputJSON(report)
	case tableOutputFormat:
		return outputBudgetTable([]ledger.BudgetReport{report})
	default:
		return errors.New("unsupported output format")
	}
}

func outputBudgetTable(budgetReports []ledger.BudgetReport) error {
	t := createStyledTable("CATEGORY", "LIMIT", "SPENT", "REMAINING", "USED", "STATUS")

	for _, r := range budgetReports {
		t.Row(
			r.Category,
			money.New(r.LimitMinor, money.USD).Display(),
			money.New(r.UsedMinor, money.USD).Display(),
			money.New(r.RemainingMinor, money.USD).Display(),
			strconv.FormatInt(r.PercentUsed, 10)+"%",
			r.Status.String(),
		)
	}

	fmt.Println(t)

	return nil
}
