package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fintrack/config"
	"fintrack/ledger"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile     string
	debug       bool
	dataFile    string
	asOfFlag    string
	periodFlag  string
	themeColors config.Colors
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fintrack",
	Short: "A terminal dashboard for your personal ledger",
	Long: `A terminal-based dashboard and CLI over a personal ledger snapshot:
budgets, savings goals, cash-flow metrics, insights and a query box,
all computed locally from a JSON data file or built-in sample data.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Setup logging
		log.SetLevel(log.InfoLevel)
		if debug {
			log.SetLevel(log.DebugLevel)
		}

		if periodFlag != monthlyPeriodType && periodFlag != annualPeriodType {
			return fmt.Errorf("invalid period: %s (must be %q or %q)",
				periodFlag, monthlyPeriodType, annualPeriodType)
		}

		if asOfFlag != "" {
			if _, err := ledger.ParseDate(asOfFlag); err != nil {
				return fmt.Errorf("invalid as-of date: %w", err)
			}
		}

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		cfg := currentConfig()

		asOf, err := resolveAsOf()
		if err != nil {
			return err
		}

		return rootAction(c.Context(), cfg, asOf, periodFlag)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fintrack.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "JSON snapshot file (default is built-in sample data)")
	rootCmd.PersistentFlags().StringVar(&asOfFlag, "as-of", "", "reference date YYYY-MM-DD (default is today)")
	rootCmd.PersistentFlags().StringVar(&periodFlag, "period", monthlyPeriodType, "evaluation period type: month or year")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("as_of", rootCmd.PersistentFlags().Lookup("as-of"))
	_ = viper.BindPFlag("period", rootCmd.PersistentFlags().Lookup("period"))

	// Bind environment variables
	_ = viper.BindEnv("data", "FINTRACK_DATA")

	// Add subcommands
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(askCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("Error finding home directory", "error", err)
			os.Exit(1)
		}

		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("fintrack")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "fintrack"))
		}

		// User home directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "fintrack"))

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/fintrack")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("data") {
		dataFile = viper.GetString("data")
	}
	if !rootCmd.PersistentFlags().Changed("as-of") {
		asOfFlag = viper.GetString("as_of")
	}
	if !rootCmd.PersistentFlags().Changed("period") {
		periodFlag = viper.GetString("period")
	}

	if err := viper.UnmarshalKey("colors", &themeColors); err != nil {
		log.Debug("Ignoring malformed colors table", "error", err)
	}
}

// currentConfig assembles the effective configuration from flags, env and
// config file.
func currentConfig() config.Config {
	return config.Config{
		Debug:  debug,
		Data:   dataFile,
		AsOf:   asOfFlag,
		Period: periodFlag,
		Colors: themeColors,
	}
}

// resolveAsOf turns the --as-of flag into a date. The clock is read here,
// once; everything below this boundary takes explicit dates.
func resolveAsOf() (time.Time, error) {
	if asOfFlag == "" {
		return ledger.DateOf(time.Now().UTC()), nil
	}
	return ledger.ParseDate(asOfFlag)
}

// loadReports is the shared subcommand path: snapshot plus derived reports
// for the as-of period.
func loadReports() (*Snapshot, reports, error) {
	snap, err := loadSnapshot(dataFile)
	if err != nil {
		return nil, reports{}, err
	}

	asOf, err := resolveAsOf()
	if err != nil {
		return nil, reports{}, err
	}

	r, err := buildReports(snap, asOf, asOf, periodFlag, insightConfig())
	if err != nil {
		return nil, reports{}, err
	}

	return snap, r, nil
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
