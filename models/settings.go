package models

// ReportSettings controls the presentation side of the report and console
// output. Loaded from an optional YAML file; zero-value fields fall back to
// defaults when loading.
type ReportSettings struct {
	CurrencySymbol        string `yaml:"currency_symbol"`
	TopN                  int    `yaml:"top_n"`
	LowPerformerThreshold int    `yaml:"low_performer_threshold"`
}
