package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fintrack/insight"
)

// insightsCmd represents the insights command.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show ranked insights for the current period",
	Long: `Evaluate the insight rules against the current period, comparing with the
immediately preceding period where one exists, and print the results most
severe first.`,
	RunE: insightsRun,
}

func init() {
	insightsCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func insightsRun(cmd *cobra.Command, _ []string) error {
	_, r, err := loadReports()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case jsonOutputFormat:
		return outputJSON(r.insights)
	case tableOutputFormat:
		return outputInsightsTable(r.insights)
	default:
		return errors.New("unsupported output format")
	}
}

func outputInsightsTable(insights []insight.Insight) error {
	if len(insights) == 0 {
		fmt.Println("No insights for this period.")
		return nil
	}

	t := createStyledTable("KIND", "TITLE", "DETAIL")

	for _, in := range insights {
		t.Row(in.Kind.String(), in.Title, in.Body)
	}

	fmt.Println(t)

	return nil
}
