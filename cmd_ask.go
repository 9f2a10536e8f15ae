package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fintrack/insight"
)

// askCmd represents the ask command.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question about the ledger",
	Long: `Answer a free-text question from the current period's metrics. Answers are
template-based and fully deterministic: the same question against the same
data always yields the same text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: askRun,
}

func askRun(_ *cobra.Command, args []string) error {
	_, r, err := loadReports()
	if err != nil {
		return err
	}

	answer, err := insight.Respond(strings.Join(args, " "), r.metrics)
	if err != nil {
		return err
	}

	fmt.Println(answer)

	return nil
}
