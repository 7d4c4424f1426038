package models

// ConvertStatus is the outcome of converting a single content file.
type ConvertStatus string

const (
	StatusConverted               ConvertStatus = "converted"
	StatusWouldConvert            ConvertStatus = "would-convert"
	StatusSkippedAlreadyConverted ConvertStatus = "skipped-already-converted"
	StatusSkippedNoFrontMatter    ConvertStatus = "skipped-no-frontmatter"
	StatusSkippedInvalid          ConvertStatus = "skipped-invalid-frontmatter"
	StatusFailed                  ConvertStatus = "failed"
)

// ConvertReport describes what happened to one file.
type ConvertReport struct {
	File       string        `json:"file"`
	Status     ConvertStatus `json:"status"`
	Categories []string      `json:"categories,omitempty"`
	Tags       []string      `json:"tags,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// ConvertSummary is the result of a batch run.
type ConvertSummary struct {
	Dir     string          `json:"dir"`
	DryRun  bool            `json:"dry_run"`
	Reports []ConvertReport `json:"reports"`
}

// Failed counts the files that hit an I/O error.
func (s ConvertSummary) Failed() int {
	n := 0
	for _, r := range s.Reports {
		if r.Status == StatusFailed {
			n++
		}
	}
	return n
}
