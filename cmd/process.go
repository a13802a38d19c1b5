package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yuvrxj-24/sales-analytics-system/catalog"
	"github.com/yuvrxj-24/sales-analytics-system/config"
	"github.com/yuvrxj-24/sales-analytics-system/models"
	"github.com/yuvrxj-24/sales-analytics-system/services"
	"github.com/yuvrxj-24/sales-analytics-system/storage"
	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

var (
	processInput       string
	processEnrichedOut string
	processReportOut   string
	processRegion      string
	processMinAmount   string
	processMaxAmount   string
	processSettings    string
	processSkipEnrich  bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the full pipeline: read, parse, validate, aggregate, enrich, report",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processInput, "input", "",
		"Path to the pipe-delimited sales data file (default from config)")
	processCmd.Flags().StringVar(&processEnrichedOut, "enriched-out", "",
		"Path for the enriched snapshot file (default from config)")
	processCmd.Flags().StringVar(&processReportOut, "report-out", "",
		"Path for the formatted report file (default from config)")
	processCmd.Flags().StringVar(&processRegion, "region", "",
		"Keep only transactions from this region")
	processCmd.Flags().StringVar(&processMinAmount, "min-amount", "",
		"Keep only transactions of at least this amount")
	processCmd.Flags().StringVar(&processMaxAmount, "max-amount", "",
		"Keep only transactions of at most this amount")
	processCmd.Flags().StringVar(&processSettings, "settings", "",
		"Path to a YAML report-settings file")
	processCmd.Flags().BoolVar(&processSkipEnrich, "skip-enrich", false,
		"Skip the catalog API call; everything is written unmatched")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger()
	if verbose {
		logger = utils.NewVerboseLogger()
	}
	cfg := config.Load()

	if processInput == "" {
		processInput = cfg.SalesDataPath
	}
	if processEnrichedOut == "" {
		processEnrichedOut = cfg.EnrichedDataPath
	}
	if processReportOut == "" {
		processReportOut = cfg.ReportPath
	}

	settings, err := config.LoadReportSettings(processSettings)
	if err != nil {
		return err
	}

	opts, err := filterOptions(cmd)
	if err != nil {
		return err
	}

	logger.Info("=== Sales Analytics System starting ===")

	lines, err := storage.NewSalesReader(logger).Read(processInput)
	if err != nil {
		return err
	}

	txns := services.NewParser(logger).Parse(lines)

	valid, _, summary := services.NewValidator(logger).ValidateAndFilter(txns, opts)

	printer := services.NewInsightPrinter(logger, settings)
	printer.PrintSummary(summary)
	printer.PrintAnalytics(valid)

	mapping := map[int]models.CatalogProduct{}
	if processSkipEnrich {
		logger.Info("[process] Enrichment skipped by flag")
	} else {
		products, err := catalog.New(cfg, logger).FetchAll(context.Background())
		if err != nil {
			logger.Warn("[process] Catalog fetch failed, continuing unenriched: %v", err)
		}
		mapping = catalog.BuildMapping(products)
	}
	enriched := services.NewEnricher(logger).Enrich(valid, mapping)

	var sink storage.EnrichedSink
	sink, err = storage.NewEnrichedWriter(processEnrichedOut)
	if err != nil {
		return err
	}
	if err := sink.WriteEnriched(enriched); err != nil {
		_ = sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}
	logger.Info("[process] Enriched snapshot saved to %s", processEnrichedOut)

	var report storage.ReportSink = storage.NewReportWriter(processReportOut, logger, settings)
	if err := report.WriteReport(valid, enriched); err != nil {
		return err
	}

	logger.Info("=== Process complete ===")
	return nil
}

// filterOptions builds the validator options from the process flags. The
// region query is normalized to per-word title case before matching, the
// same normalization the interactive original applied; amounts accept
// thousands-separator commas and an empty string means no bound.
func filterOptions(cmd *cobra.Command) (models.FilterOptions, error) {
	var opts models.FilterOptions

	if cmd.Flags().Changed("region") && strings.TrimSpace(processRegion) != "" {
		region := cases.Title(language.English).String(strings.TrimSpace(processRegion))
		opts.Region = &region
	}

	var err error
	if opts.MinAmount, err = parseAmount(processMinAmount); err != nil {
		return opts, fmt.Errorf("invalid --min-amount: %w", err)
	}
	if opts.MaxAmount, err = parseAmount(processMaxAmount); err != nil {
		return opts, fmt.Errorf("invalid --max-amount: %w", err)
	}
	return opts, nil
}

func parseAmount(s string) (*float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
