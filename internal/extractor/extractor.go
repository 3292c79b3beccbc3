// Package extractor runs the anystyle citation extractor over PDF files.
package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/matsen/pdfsources/internal/cache"
	"github.com/matsen/pdfsources/internal/pdf"
)

// ErrToolNotFound is returned when the anystyle binary cannot be executed.
var ErrToolNotFound = errors.New("anystyle command not found")

// ErrNoCitations is returned when anystyle finds nothing in a PDF.
var ErrNoCitations = errors.New("no citations found")

// InstallHelp explains how to install anystyle.
const InstallHelp = `Please install required dependencies:
  1. poppler-utils: brew install poppler (macOS) or apt-get install poppler-utils (Ubuntu)
  2. anystyle: gem install anystyle-cli`

// Runner executes a command and returns its standard output and error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if errors.Is(err, exec.ErrNotFound) {
		err = fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

// Options configures an Extractor.
type Options struct {
	Binary        string        // anystyle executable
	OutDir        string        // Where anystyle-<name>.json files are written
	Timeout       time.Duration // Per-PDF limit
	Attempts      int           // Tries per PDF
	RetryDelay    time.Duration // Base delay between tries
	RatePerSecond float64       // Maximum anystyle launches per second; 0 means unlimited
}

// Extractor turns PDFs into anystyle JSON files.
type Extractor struct {
	opts    Options
	runner  Runner
	limiter *rate.Limiter
	cache   *cache.Cache
	logger  *zap.Logger
	inspect func(path string) (pdf.Info, error)
}

// New returns an Extractor. runner, c and logger may be nil.
func New(opts Options, runner Runner, c *cache.Cache, logger *zap.Logger) *Extractor {
	if opts.Binary == "" {
		opts.Binary = "anystyle"
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Minute
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	return &Extractor{
		opts:    opts,
		runner:  runner,
		limiter: rate.NewLimiter(limit, 1),
		cache:   c,
		logger:  logger,
		inspect: pdf.Inspect,
	}
}

// Available checks that anystyle can be run.
func (e *Extractor) Available(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stdout, _, err := e.runner.Run(ctx, e.opts.Binary, "--version")
	if err != nil {
		if errors.Is(err, ErrToolNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	e.logger.Debug("anystyle available", zap.String("version", strings.TrimSpace(string(stdout))))
	return nil
}

// ExtractAll extracts every PDF in order and returns the JSON files written.
// Failures on individual PDFs are logged and skipped; a missing anystyle
// binary or a cancelled context stops the batch.
func (e *Extractor) ExtractAll(ctx context.Context, pdfs []string) ([]string, error) {
	if err := os.MkdirAll(e.opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var outputs []string
	for _, p := range pdfs {
		out, err := e.Extract(ctx, p)
		if err != nil {
			if errors.Is(err, ErrToolNotFound) || ctx.Err() != nil {
				return outputs, err
			}
			e.logger.Warn("failed to process PDF", zap.String("pdf", p), zap.Error(err))
			continue
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// OutputPath returns the JSON file Extract writes for pdfPath.
func (e *Extractor) OutputPath(pdfPath string) string {
	return filepath.Join(e.opts.OutDir, "anystyle-"+pdf.BaseName(pdfPath)+".json")
}

// Extract runs anystyle on one PDF and writes its JSON output, reusing a
// cached result when the PDF's content has been extracted before.
func (e *Extractor) Extract(ctx context.Context, pdfPath string) (string, error) {
	info, err := e.inspect(pdfPath)
	if err != nil {
		return "", err
	}
	if !info.HasText {
		e.logger.Warn("PDF has no text layer; anystyle may find nothing",
			zap.String("pdf", pdfPath), zap.Int("pages", info.Pages))
	}

	outPath := e.OutputPath(pdfPath)
	e.logger.Info("processing PDF", zap.String("pdf", pdfPath), zap.String("output", outPath))

	var hash string
	if e.cache != nil {
		if hash, err = cache.Fingerprint(pdfPath); err != nil {
			return "", err
		}
		data, ok, err := e.cache.Get(hash)
		if err != nil {
			e.logger.Warn("cache lookup failed", zap.String("pdf", pdfPath), zap.Error(err))
		} else if ok {
			e.logger.Debug("using cached extraction", zap.String("pdf", pdfPath))
			return outPath, writeOutput(outPath, data)
		}
	}

	data, err := e.run(ctx, pdfPath)
	if err != nil {
		return "", err
	}
	if err := writeOutput(outPath, data); err != nil {
		return "", err
	}

	if e.cache != nil {
		if err := e.cache.Put(hash, pdfPath, data); err != nil {
			e.logger.Warn("cache update failed", zap.String("pdf", pdfPath), zap.Error(err))
		}
	}
	return outPath, nil
}

// run invokes anystyle with retries, pacing launches with the limiter.
func (e *Extractor) run(ctx context.Context, pdfPath string) ([]byte, error) {
	var out []byte
	err := retry.Do(
		func() error {
			if err := e.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}
			runCtx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
			defer cancel()

			stdout, stderr, err := e.runner.Run(runCtx, e.opts.Binary, "-f", "json", "find", pdfPath)
			if err != nil {
				if errors.Is(err, ErrToolNotFound) {
					return retry.Unrecoverable(err)
				}
				if runCtx.Err() == context.DeadlineExceeded {
					return fmt.Errorf("timed out after %s", e.opts.Timeout)
				}
				return fmt.Errorf("anystyle: %w: %s", err, strings.TrimSpace(string(stderr)))
			}
			if len(bytes.TrimSpace(stdout)) == 0 {
				return retry.Unrecoverable(ErrNoCitations)
			}
			out = stdout
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(e.opts.Attempts)),
		retry.Delay(e.opts.RetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			e.logger.Debug("retrying anystyle", zap.String("pdf", pdfPath), zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
