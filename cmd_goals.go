package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/spf13/cobra"

	"fintrack/ledger"
)

// goalsCmd represents the goals command.
var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Savings goal commands",
	Long:  `Commands for inspecting savings goal progress.`,
}

// goalsListCmd represents the goals list command.
var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List progress for every savings goal",
	RunE:  goalsListRun,
}

func init() {
	goalsCmd.AddCommand(goalsListCmd)

	goalsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func goalsListRun(cmd *cobra.Command, _ []string) error {
	_, r, err := loadReports()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case jsonOutputFormat:
		return outputJSON(r.current.Goals)
	case tableOutputFormat:
		return outputGoalsTable(r.current.Goals)
	default:
		return errors.New("unsupported output format")
	}
}

func outputGoalsTable(goalReports []ledger.GoalReport) error {
	t := createStyledTable("GOAL", "SAVED", "TARGET", "REMAINING", "PROGRESS", "STATUS")

	for _, r := range goalReports {
		t.Row(
			r.Name,
			money.New(r.SavedMinor, money.USD).Display(),
			money.New(r.TargetMinor, money.USD).Display(),
			money.New(r.RemainingMinor, money.USD).Display(),
			strconv.FormatInt(r.PercentSaved, 10)+"%",
			r.Status.String(),
		)
	}

	fmt.Println(t)

	return nil
}
