package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"astro-blog/pkg/models"
)

// Converter rewrites legacy frontmatter of every content file in one
// directory. Files are handled one at a time, in directory listing order.
type Converter struct {
	dir    string
	dryRun bool
	out    io.Writer
}

func NewConverter(dir string, dryRun bool, out io.Writer) *Converter {
	if out == nil {
		out = io.Discard
	}
	return &Converter{dir: dir, dryRun: dryRun, out: out}
}

// ListCandidateFiles returns the names of the .md and .mdx files in the
// converter's directory. Subdirectories are not visited.
func (c *Converter) ListCandidateFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsContentFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// ConvertContent turns a legacy document into a target-schema one. The body
// after the closing delimiter is carried over byte for byte.
func ConvertContent(raw string) (string, *models.Record, error) {
	block, body, err := SplitFrontMatter(raw)
	if err != nil {
		return "", nil, err
	}
	record := ParseLegacyBlock(block)
	if IsAlreadyTargetSchema(record) {
		return "", record, ErrAlreadyConverted
	}
	return BuildTargetBlock(record) + body, record, nil
}

// ConvertFile converts a single file in place. Skips and failures are
// reported, never returned.
func (c *Converter) ConvertFile(name string) models.ConvertReport {
	report := models.ConvertReport{File: name}
	path := filepath.Join(c.dir, name)

	raw, err := os.ReadFile(path)
	if err != nil {
		return c.fail(report, fmt.Errorf("read: %w", err))
	}

	converted, record, err := ConvertContent(string(raw))
	switch {
	case errors.Is(err, ErrNotFrontMatter):
		report.Status = models.StatusSkippedNoFrontMatter
		fmt.Fprintf(c.out, "Skipping %s - no frontmatter\n", name)
		return report
	case errors.Is(err, ErrInvalidFrontMatter):
		report.Status = models.StatusSkippedInvalid
		fmt.Fprintf(c.out, "Skipping %s - invalid frontmatter\n", name)
		return report
	case errors.Is(err, ErrAlreadyConverted):
		report.Status = models.StatusSkippedAlreadyConverted
		fmt.Fprintf(c.out, "%s - already in Astro format\n", name)
		return report
	case err != nil:
		return c.fail(report, err)
	}

	report.Categories = listOf(record, "categories")
	report.Tags = listOf(record, "tags")

	if c.dryRun {
		report.Status = models.StatusWouldConvert
		fmt.Fprintf(c.out, "Would convert %s\n", name)
	} else {
		if err := WriteFileAtomic(path, []byte(converted)); err != nil {
			return c.fail(report, err)
		}
		report.Status = models.StatusConverted
		fmt.Fprintf(c.out, "Converted %s\n", name)
	}
	fmt.Fprintf(c.out, "   - Categories: %s\n", describeList(report.Categories))
	fmt.Fprintf(c.out, "   - Tags: %s\n", describeList(report.Tags))
	return report
}

// Run converts every candidate file. Only a failure to list the directory
// is returned as an error.
func (c *Converter) Run() (models.ConvertSummary, error) {
	summary := models.ConvertSummary{Dir: c.dir, DryRun: c.dryRun}

	files, err := c.ListCandidateFiles()
	if err != nil {
		return summary, err
	}
	for _, name := range files {
		summary.Reports = append(summary.Reports, c.ConvertFile(name))
	}

	converted := 0
	for _, r := range summary.Reports {
		if r.Status == models.StatusConverted || r.Status == models.StatusWouldConvert {
			converted++
		}
	}
	failed := summary.Failed()
	fmt.Fprintf(c.out, "\nConversion complete! %d converted, %d skipped, %d failed\n",
		converted, len(summary.Reports)-converted-failed, failed)
	return summary, nil
}

func (c *Converter) fail(report models.ConvertReport, err error) models.ConvertReport {
	report.Status = models.StatusFailed
	report.Error = err.Error()
	fmt.Fprintf(c.out, "Failed %s: %v\n", report.File, err)
	return report
}

func listOf(record *models.Record, key string) []string {
	v, ok := record.Get(key)
	if !ok {
		return nil
	}
	return v.List()
}

func describeList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return models.Sequence(items...).String()
}
