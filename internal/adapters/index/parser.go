// Package index reads the package index of a local mirror directory.
package index

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/dpms/internal/core/domain"
	"go.trai.ch/dpms/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single index line.
const maxLineSize = 1024 * 1024

var _ ports.IndexReader = (*Parser)(nil)

// Parser implements ports.IndexReader for the flat-text packages.txt format.
type Parser struct {
	mirrorPath string
	indexPath  string
	reporter   ports.ErrorReporter
	fs         FileSystem
}

// Option configures a Parser.
type Option func(*Parser)

// WithFileSystem replaces the filesystem the parser reads from.
func WithFileSystem(fsys FileSystem) Option {
	return func(p *Parser) {
		p.fs = fsys
	}
}

// NewParser creates a parser for the index inside mirrorPath.
func NewParser(mirrorPath string, reporter ports.ErrorReporter, opts ...Option) *Parser {
	p := &Parser{
		mirrorPath: mirrorPath,
		indexPath:  filepath.Join(mirrorPath, domain.IndexFileName),
		reporter:   reporter,
		fs:         NewOSFS(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MirrorPath returns the mirror directory the parser reads from.
func (p *Parser) MirrorPath() string {
	return p.mirrorPath
}

// IndexPath returns the path of the index file.
func (p *Parser) IndexPath() string {
	return p.indexPath
}

// ParseAll reads the index file and returns the well-formed records in file order.
//
// A missing or unreadable index is fatal: the problem is reported and a nil slice is
// returned with the error. Malformed lines are reported and skipped.
func (p *Parser) ParseAll(ctx context.Context) ([]domain.PackageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "index parse canceled")
	}

	if _, err := p.fs.Stat(p.indexPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.reporter.ReportError("index file not found at " + p.indexPath)
			return nil, errors.Join(domain.ErrIndexNotFound, zerr.With(err, "path", p.indexPath))
		}
		return nil, p.readFailed(err)
	}

	f, err := p.fs.Open(p.indexPath)
	if err != nil {
		return nil, p.readFailed(err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	records := make([]domain.PackageRecord, 0)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, domain.CommentPrefix) {
			continue
		}

		record, ok := p.parseLine(line)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, p.readFailed(err)
	}

	return records, nil
}

// parseLine converts a trimmed, non-comment line into a record.
// It reports and rejects lines without exactly domain.RequiredFieldCount fields.
func (p *Parser) parseLine(line string) (domain.PackageRecord, bool) {
	fields := splitTrimmed(line, domain.FieldSeparator)
	if len(fields) != domain.RequiredFieldCount {
		p.reporter.ReportError(fmt.Sprintf(
			"skipping %s (expected %d fields): %s",
			domain.ErrMalformedLine, domain.RequiredFieldCount, line,
		))
		return domain.PackageRecord{}, false
	}

	var deps []string
	for _, dep := range splitTrimmed(fields[3], domain.ListSeparator) {
		if dep != "" {
			deps = append(deps, dep)
		}
	}

	// Empty build steps are kept as-is, unlike dependencies.
	steps := splitTrimmed(fields[4], domain.ListSeparator)

	return domain.NewPackageRecord(fields[0], fields[1], fields[2], deps, steps), true
}

func (p *Parser) readFailed(err error) error {
	p.reporter.ReportError(domain.ErrIndexReadFailed.Error() + ": " + err.Error())
	return errors.Join(domain.ErrIndexReadFailed, zerr.With(err, "path", p.indexPath))
}

func splitTrimmed(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// Factory implements ports.IndexReaderFactory.
type Factory struct {
	opts []Option
}

// NewFactory creates a Factory that applies opts to every parser it creates.
func NewFactory(opts ...Option) *Factory {
	return &Factory{opts: opts}
}

// ForMirror returns a parser for the index inside mirrorPath.
func (f *Factory) ForMirror(mirrorPath string, reporter ports.ErrorReporter) ports.IndexReader {
	return NewParser(mirrorPath, reporter, f.opts...)
}
