package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show balance and cash-flow metrics for the period",
	Long: `Show the ledger balance, the period's income, spend and net cash flow,
and the rolling total over the last seven days.`,
	RunE: summaryRun,
}

func init() {
	summaryCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

type summaryOutput struct {
	AsOf               string `json:"as_of"`
	PeriodStart        string `json:"period_start"`
	PeriodEnd          string `json:"period_end"`
	BalanceMinor       int64  `json:"balance_minor"`
	IncomeMinor        int64  `json:"income_minor"`
	ExpenseMinor       int64  `json:"expense_minor"`
	NetMinor           int64  `json:"net_minor"`
	RollingWindowDays  int    `json:"rolling_window_days"`
	RollingTotalMinor  int64  `json:"rolling_total_minor"`
	SavingsRatePercent *int64 `json:"savings_rate_percent,omitempty"`
}

func summaryRun(cmd *cobra.Command, _ []string) error {
	_, r, err := loadReports()
	if err != nil {
		return err
	}

	out := summaryOutput{
		AsOf:              r.asOf.Format("2006-01-02"),
		PeriodStart:       r.period.startDate(),
		PeriodEnd:         r.period.endDate(),
		BalanceMinor:      r.balance,
		IncomeMinor:       r.current.Summary.IncomeMinor,
		ExpenseMinor:      r.current.Summary.ExpenseMinor,
		NetMinor:          r.current.Summary.NetMinor,
		RollingWindowDays: rollingWindowDays,
		RollingTotalMinor: r.rolling,
	}
	if rate, ok := r.current.Summary.SavingsRatePercent(); ok {
		out.SavingsRatePercent = &rate
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case jsonOutputFormat:
		return outputJSON(out)
	case tableOutputFormat:
		return outputSummaryTable(out)
	default:
		return errors.New("unsupported output format")
	}
}

func outputSummaryTable(out summaryOutput) error {
	t := createStyledTable("METRIC", "VALUE")

	rate := "-"
	if out.SavingsRatePercent != nil {
		rate = strconv.FormatInt(*out.SavingsRatePercent, 10) + "%"
	}

	t.Row("As Of", out.AsOf)
	t.Row("Period", out.PeriodStart+" - "+out.PeriodEnd)
	t.Row("Balance", money.New(out.BalanceMinor, money.USD).Display())
	t.Row("Income", money.New(out.IncomeMinor, money.USD).Display())
	t.Row("Spent", money.New(out.ExpenseMinor, money.USD).Display())
	t.Row("Net Cash Flow", money.New(out.NetMinor, money.USD).Display())
	t.Row(fmt.Sprintf("Last %d Days", out.RollingWindowDays), money.New(out.RollingTotalMinor, money.USD).Display())
	t.Row("Savings Rate", rate)

	fmt.Println(t)

	return nil
}
