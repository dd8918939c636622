package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "lintpath: %d files, %d ignored\n",
		report.Summary.TotalFiles,
		report.Summary.IgnoredFiles)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for _, file := range report.Files {
		if file.Ignored {
			fmt.Fprintf(w, "%s (ignored)\n", file.Filename)
			continue
		}
		fmt.Fprintln(w, file.Filename)
	}

	if f.opts.Verbose {
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Summary: %d files, %d ignored\n",
			report.Summary.TotalFiles,
			report.Summary.IgnoredFiles)
	}

	return nil
}
