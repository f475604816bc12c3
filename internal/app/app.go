// Package app implements the application layer for dpms.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/dpms/internal/core/domain"
	"go.trai.ch/dpms/internal/core/ports"
	"go.trai.ch/zerr"
)

// formatSwitcher is implemented by loggers that can switch to JSON output.
type formatSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	readers      ports.IndexReaderFactory
	hasher       ports.Hasher
	logger       ports.Logger
	reporter     ports.ErrorReporter
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	readers ports.IndexReaderFactory,
	hasher ports.Hasher,
	log ports.Logger,
	reporter ports.ErrorReporter,
) *App {
	return &App{
		configLoader: loader,
		readers:      readers,
		hasher:       hasher,
		logger:       log,
		reporter:     reporter,
	}
}

// Options holds the settings shared by every command.
type Options struct {
	// ConfigPath is the configuration file to read. Empty means dpms.yaml in the working directory.
	ConfigPath string
	// MirrorPath overrides the configured mirror directory when set.
	MirrorPath string
	// JSON forces JSON log output.
	JSON bool
}

// PackageView is the presentation form of a package record.
type PackageView struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Source       string            `yaml:"source"`
	Dependencies map[string]string `yaml:"dependencies"`
	BuildSteps   []string          `yaml:"build_steps"`
	Hash         string            `yaml:"hash"`
}

// CheckReport summarizes a validation pass over the index.
type CheckReport struct {
	IndexPath string `yaml:"index"`
	Packages  int    `yaml:"packages"`
	Problems  int    `yaml:"problems"`
	IndexHash string `yaml:"index_hash"`
}

// List returns every well-formed package in the index, in file order.
func (a *App) List(ctx context.Context, opts Options) ([]PackageView, error) {
	records, _, err := a.parse(ctx, opts)
	if err != nil {
		return nil, err
	}

	views := make([]PackageView, 0, len(records))
	for _, r := range records {
		views = append(views, a.view(r))
	}
	return views, nil
}

// Show returns the first package in the index with the given name.
func (a *App) Show(ctx context.Context, name string, opts Options) (PackageView, error) {
	records, _, err := a.parse(ctx, opts)
	if err != nil {
		return PackageView{}, err
	}

	for _, r := range records {
		if r.Name() == name {
			return a.view(r), nil
		}
	}
	msg := fmt.Sprintf("no package named %q", name)
	return PackageView{}, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, msg), "package", name)
}

// Check parses the index and reports how many lines were skipped.
// It returns the report together with domain.ErrIndexHasProblems when any line was malformed.
func (a *App) Check(ctx context.Context, opts Options) (CheckReport, error) {
	records, cfg, counter, err := a.parseCounting(ctx, opts)
	if err != nil {
		return CheckReport{}, err
	}

	indexPath := filepath.Join(cfg.MirrorPath, domain.IndexFileName)
	sum, err := a.hasher.ComputeFileHash(indexPath)
	if err != nil {
		return CheckReport{}, err
	}

	report := CheckReport{
		IndexPath: indexPath,
		Packages:  len(records),
		Problems:  counter.count,
		IndexHash: fmt.Sprintf("%016x", sum),
	}

	if report.Problems > 0 {
		msg := fmt.Sprintf("%d index lines skipped", report.Problems)
		return report, zerr.With(zerr.Wrap(domain.ErrIndexHasProblems, msg), "problems", report.Problems)
	}
	return report, nil
}

func (a *App) parse(ctx context.Context, opts Options) ([]domain.PackageRecord, *domain.Config, error) {
	records, cfg, _, err := a.parseCounting(ctx, opts)
	return records, cfg, err
}

func (a *App) parseCounting(
	ctx context.Context,
	opts Options,
) ([]domain.PackageRecord, *domain.Config, *countingReporter, error) {
	cfg, err := a.configure(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	counter := &countingReporter{next: a.reporter}
	records, err := a.readers.ForMirror(cfg.MirrorPath, counter).ParseAll(ctx)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to load package index")
	}

	return records, cfg, counter, nil
}

// configure loads the configuration and applies command line overrides.
func (a *App) configure(opts Options) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.MirrorPath != "" {
		cfg.MirrorPath = opts.MirrorPath
	}
	if opts.JSON {
		cfg.LogFormat = domain.LogFormatJSON
	}

	if s, ok := a.logger.(formatSwitcher); ok {
		s.SetJSON(cfg.LogFormat == domain.LogFormatJSON)
	}

	return cfg, nil
}

func (a *App) view(r domain.PackageRecord) PackageView {
	return PackageView{
		Name:         r.Name(),
		Version:      r.Version(),
		Source:       r.SourceURL(),
		Dependencies: r.Dependencies(),
		BuildSteps:   r.BuildSteps(),
		Hash:         a.hasher.ComputeRecordHash(r),
	}
}

// countingReporter forwards reports and counts them.
type countingReporter struct {
	next  ports.ErrorReporter
	count int
}

func (c *countingReporter) ReportError(message string) {
	c.count++
	c.next.ReportError(message)
}
