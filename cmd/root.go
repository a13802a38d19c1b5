package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sales-analytics",
	Short: "Sales Analytics System — validate, aggregate and enrich flat sales logs",
	Long: `Sales Analytics System ingests a pipe-delimited transactional sales log,
cleans and validates it, computes region/product/customer/daily aggregate
views, enriches records with external catalog metadata, and emits an
enriched snapshot plus a formatted text report.

Example Usage:
  sales-analytics process                         # run the full pipeline
  sales-analytics process --region "north"        # keep one region only
  sales-analytics process --min-amount 1,000      # drop small transactions`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug output")
}
