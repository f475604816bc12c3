package commands

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/dpms/internal/app"
	"go.trai.ch/dpms/internal/core/domain"
	"go.trai.ch/dpms/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	if format != formatText && format != formatYAML {
		msg := fmt.Sprintf("unknown output format %q", format)
		return zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, msg), "format", format)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode output")
	}
	return enc.Close()
}

// writePackageTable prints one aligned line per package.
func writePackageTable(w io.Writer, views []app.PackageView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, v := range views {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", highlight(w, v.Name), v.Version, v.Source)
	}
	return tw.Flush()
}

func writePackage(w io.Writer, v app.PackageView) error {
	deps := make([]string, 0, len(v.Dependencies))
	for _, name := range slices.Sorted(maps.Keys(v.Dependencies)) {
		deps = append(deps, name+"@"+v.Dependencies[name])
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "name:\t%s\n", highlight(w, v.Name))
	_, _ = fmt.Fprintf(tw, "version:\t%s\n", v.Version)
	_, _ = fmt.Fprintf(tw, "source:\t%s\n", v.Source)
	_, _ = fmt.Fprintf(tw, "dependencies:\t%s\n", strings.Join(deps, ", "))
	_, _ = fmt.Fprintf(tw, "hash:\t%s\n", v.Hash)
	_, _ = fmt.Fprintln(tw, "build steps:")
	for i, step := range v.BuildSteps {
		_, _ = fmt.Fprintf(tw, "  %d.\t%s\n", i+1, step)
	}
	return tw.Flush()
}

// highlight styles s when w is an interactive terminal.
func highlight(w io.Writer, s string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) || os.Getenv("NO_COLOR") != "" {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Foreground(style.Iris).Render(s)
}
