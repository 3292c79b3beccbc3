package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/pdfsources/internal/citation"
	"github.com/matsen/pdfsources/internal/importer"
)

// CheckTitleMaxLen is the title width in human check output.
const CheckTitleMaxLen = 60

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <json files...>",
	Short: "Show how each extracted citation is classified and filtered",
	Long: `Show, for every record in the given anystyle JSON files, the inferred
citation type, whether it passes the validity filter and, if not, why.

Examples:
  pdfsources check info/anystyle-paper.json
  pdfsources check --human info/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// CheckRecord is one record in the check report.
type CheckRecord struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	Signature string `json:"signature,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// CheckSource is the check report for one file.
type CheckSource struct {
	Name    string        `json:"name"`
	Path    string        `json:"path"`
	Error   string        `json:"error,omitempty"`
	Valid   int           `json:"valid"`
	Records []CheckRecord `json:"records"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	report := buildCheckReport(importer.LoadFiles(args, logger), cfg.Filter(), cfg.Classifier())

	if !humanOutput {
		return outputJSON(report)
	}

	for _, src := range report {
		outputHuman("%s (%d of %d valid)\n", src.Name, src.Valid, len(src.Records))
		if src.Error != "" {
			outputHuman("  error: %s\n", src.Error)
		}
		for _, rec := range src.Records {
			status := "ok"
			switch {
			case !rec.Valid:
				status = "dropped: " + rec.Reason
			case rec.Duplicate:
				status = "duplicate"
			}
			outputHuman("  %3d. [%s] %s (%s)\n", rec.Index, rec.Type, truncateString(rec.Title, CheckTitleMaxLen), status)
		}
		outputHuman("\n")
	}
	return nil
}

// buildCheckReport evaluates every record of cols. Duplicates are tracked
// across all collections, in order, among valid records only.
func buildCheckReport(cols []importer.Collection, filter citation.Filter, classifier citation.Classifier) []CheckSource {
	dedupe := citation.NewDeduper()
	report := []CheckSource{}
	for _, col := range cols {
		src := CheckSource{Name: col.Name, Path: col.Path, Records: []CheckRecord{}}
		if col.Err != nil {
			src.Error = col.Err.Error()
		}
		for i, c := range col.Citations {
			rec := CheckRecord{
				Index:     i + 1,
				Title:     c.Title,
				Type:      classifier.Classify(c).String(),
				Reason:    filter.Reason(c),
				Signature: citation.Signature(c),
			}
			rec.Valid = rec.Reason == ""
			if rec.Valid {
				src.Valid++
				rec.Duplicate = !dedupe.Keep(c)
			}
			src.Records = append(src.Records, rec)
		}
		report = append(report, src)
	}
	return report
}
