package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matsen/pdfsources/internal/bibliography"
	"github.com/matsen/pdfsources/internal/cache"
	"github.com/matsen/pdfsources/internal/config"
	"github.com/matsen/pdfsources/internal/extractor"
	"github.com/matsen/pdfsources/internal/importer"
	"github.com/matsen/pdfsources/internal/pdf"
	"github.com/matsen/pdfsources/internal/style"
)

var (
	genDivided        bool
	genCombined       bool
	genSources        bool
	genSourcesDivided bool
	genGroupings      []string
	genOutput         string
	genStyle          string
	genForce          bool
	genOverwrite      bool
	genNoInteraction  bool
	genNoDedupe       bool
	genNoCache        bool
	genPDFDir         string
	genInfoDir        string
)

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&genDivided, "divided-output", false, "Generate bibliography divided by type (bibliography_divided.md)")
	f.BoolVar(&genCombined, "combined-output", false, "Generate combined bibliography (bibliography_combined.md)")
	f.BoolVar(&genSources, "sources-output", false, "Generate bibliography grouped by source PDF (bibliography_sources.md)")
	f.BoolVar(&genSourcesDivided, "sources-divided-output", false, "Generate bibliography grouped by source PDF with categories (bibliography_sources_divided.md)")
	f.StringSliceVar(&genGroupings, "grouping", nil, "Groupings to generate by name: divided, combined, sources, sources-divided (repeatable)")
	f.StringVar(&genOutput, "output", "", "Output file name (used only when exactly one output type is requested)")
	f.StringVar(&genStyle, "style", "", "Citation style: chicago, apa, harvard (default from config: chicago)")
	f.BoolVar(&genForce, "force", false, "Force overwrite existing files without prompting")
	f.BoolVar(&genOverwrite, "overwrite", false, "Overwrite any existing bibliography files without prompting")
	f.BoolVar(&genNoInteraction, "no-interaction", false, "Disable interactive prompts (fail if files exist)")
	f.BoolVar(&genNoDedupe, "no-dedupe", false, "Keep near-duplicate citations")
	f.BoolVar(&genNoCache, "no-cache", false, "Re-run anystyle even for PDFs extracted before")
	f.StringVar(&genPDFDir, "pdf-dir", "", "Directory scanned for PDFs (default from config: pdfs)")
	f.StringVar(&genInfoDir, "info-dir", "", "Directory for anystyle JSON output (default from config: info)")
}

// GeneratedFile describes one written bibliography.
type GeneratedFile struct {
	File string `json:"file"`
	*bibliography.Result
}

// GenerateResult is the response for the root command.
type GenerateResult struct {
	Inputs []string        `json:"inputs"`
	Files  []GeneratedFile `json:"files"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genPDFDir != "" {
		cfg.Extract.PDFDir = genPDFDir
	}
	if genInfoDir != "" {
		cfg.Extract.InfoDir = genInfoDir
	}

	styleName := genStyle
	if styleName == "" {
		styleName = cfg.Output.DefaultStyle
	}
	st, err := style.Lookup(styleName)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	formatter := st.With(cfg.Filter(), cfg.Classifier())

	inputs := args
	if len(inputs) == 0 {
		inputs = mustExtractFromPDFs(cmd)
	} else {
		logger.Info("processing provided JSON files", zap.Int("files", len(inputs)))
	}

	cols := importer.LoadFiles(inputs, logger)

	asm := bibliography.New(formatter, logger)
	asm.Classifier = cfg.Classifier()
	asm.Dedupe = cfg.Output.Dedupe && !genNoDedupe

	groupings, err := requestedGroupings()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if len(groupings) == len(bibliography.Groupings()) && !anyGroupingFlag() {
		logger.Info("no specific output type specified; generating all bibliography formats")
	}

	policy := bibliography.OverwritePolicy{
		Force:         genForce || genOverwrite,
		NoInteraction: genNoInteraction,
		In:            os.Stdin,
		Out:           os.Stderr,
	}

	result := GenerateResult{Inputs: inputs, Files: []GeneratedFile{}}
	for _, g := range groupings {
		res, err := asm.Render(g, cols)
		if err != nil {
			exitWithError(ExitError, "rendering %s: %v", g, err)
		}

		name := g.DefaultFile()
		if genOutput != "" && len(groupings) == 1 {
			name = genOutput
		}
		path, err := bibliography.OutputPath(name, policy)
		if err != nil {
			if errors.Is(err, bibliography.ErrFileExists) {
				exitWithError(ExitConfigError, "%v (use --force to overwrite)", err)
			}
			exitWithError(ExitError, "%v", err)
		}
		if path != name {
			logger.Info("using alternative filename", zap.String("file", path))
		}
		if err := bibliography.WriteFile(path, res); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		logger.Info("generated bibliography", zap.String("file", path), zap.Int("entries", res.Entries))
		result.Files = append(result.Files, GeneratedFile{File: path, Result: res})
	}

	if humanOutput {
		for _, f := range result.Files {
			outputHuman("%s: %d entries from %d records", f.File, f.Entries, f.Records)
			if f.Duplicates > 0 {
				outputHuman(" (%d duplicates dropped)", f.Duplicates)
			}
			outputHuman("\n")
		}
		return nil
	}
	return outputJSON(result)
}

// mustExtractFromPDFs runs anystyle over the configured PDF directory and
// returns the JSON files produced. Exits if there is nothing to process.
func mustExtractFromPDFs(cmd *cobra.Command) []string {
	pdfDir := config.ExpandPath(cfg.Extract.PDFDir)
	logger.Info("scanning for PDF files", zap.String("dir", pdfDir))

	pdfs, err := pdf.Find(pdfDir)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if len(pdfs) == 0 {
		exitWithError(ExitDataError, "no PDF files found in '%s'\n\nAdd PDF files to that directory or pass anystyle JSON files directly.", pdfDir)
	}
	logger.Info("found PDF files", zap.Int("count", len(pdfs)))

	var c *cache.Cache
	if cfg.Extract.Cache && !genNoCache {
		c, err = cache.Open(cfg.CachePath())
		if err != nil {
			logger.Warn("extraction cache unavailable", zap.Error(err))
			c = nil
		} else {
			defer c.Close()
		}
	}

	ex := extractor.New(extractor.Options{
		Binary:        cfg.Extract.Binary,
		OutDir:        config.ExpandPath(cfg.Extract.InfoDir),
		Timeout:       cfg.Extract.Timeout,
		Attempts:      cfg.Extract.Attempts,
		RatePerSecond: cfg.Extract.RatePerSecond,
	}, nil, c, logger)

	ctx := cmd.Context()
	if err := ex.Available(ctx); err != nil {
		exitWithError(ExitToolMissing, "%v\n\n%s", err, extractor.InstallHelp)
	}

	outputs, err := ex.ExtractAll(ctx, pdfs)
	if err != nil {
		if errors.Is(err, extractor.ErrToolNotFound) {
			exitWithError(ExitToolMissing, "%v\n\n%s", err, extractor.InstallHelp)
		}
		exitWithError(ExitError, "extracting citations: %v", err)
	}
	if len(outputs) == 0 {
		exitWithError(ExitDataError, "failed to extract citations from PDF files")
	}
	return outputs
}

func anyGroupingFlag() bool {
	return genDivided || genCombined || genSources || genSourcesDivided || len(genGroupings) > 0
}

// requestedGroupings returns the groupings selected by flags, in generation
// order, or all of them when none is selected.
func requestedGroupings() ([]bibliography.Grouping, error) {
	if !anyGroupingFlag() {
		return bibliography.Groupings(), nil
	}

	selected := map[bibliography.Grouping]bool{
		bibliography.Divided:        genDivided,
		bibliography.Combined:       genCombined,
		bibliography.Sources:        genSources,
		bibliography.SourcesDivided: genSourcesDivided,
	}
	for _, name := range genGroupings {
		g, err := bibliography.ParseGrouping(name)
		if err != nil {
			return nil, err
		}
		selected[g] = true
	}

	var gs []bibliography.Grouping
	for _, g := range bibliography.Groupings() {
		if selected[g] {
			gs = append(gs, g)
		}
	}
	return gs, nil
}
