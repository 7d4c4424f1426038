package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"astro-blog/pkg/models"
)

const (
	targetMarker = "pubDate"
	legacyMarker = "date"
)

type fieldFormat int

const (
	quotedScalar fieldFormat = iota
	inlineArray
)

// fieldMapping maps a target-schema field to the legacy fields it is read
// from, in priority order. Derive supplies a value when no source is set;
// fields with a Derive func are always emitted.
type fieldMapping struct {
	Target  string
	Sources []string
	Format  fieldFormat
	Derive  func(*models.Record) models.Value
}

// targetSchema is emitted in this order. Legacy fields not listed here are
// dropped.
var targetSchema = []fieldMapping{
	{Target: "title", Sources: []string{"title"}, Format: quotedScalar},
	{Target: "description", Sources: []string{"description"}, Format: quotedScalar, Derive: deriveDescription},
	{Target: "pubDate", Sources: []string{"date"}, Format: quotedScalar},
	{Target: "heroImage", Sources: []string{"heroImage", "image"}, Format: quotedScalar},
	{Target: "tags", Sources: []string{"tags"}, Format: inlineArray},
	{Target: "categories", Sources: []string{"categories"}, Format: inlineArray},
}

// IsAlreadyTargetSchema reports whether a record has pubDate and no date.
func IsAlreadyTargetSchema(record *models.Record) bool {
	return record.Present(targetMarker) && !record.Present(legacyMarker)
}

// BuildTargetBlock renders a complete "---" delimited block, closing
// delimiter and trailing newline included.
func BuildTargetBlock(record *models.Record) string {
	var sb strings.Builder
	sb.WriteString(yamlDelimiter + "\n")

	for _, field := range targetSchema {
		value, ok := lookup(record, field.Sources)
		if !ok {
			if field.Derive == nil {
				continue
			}
			value = field.Derive(record)
		}

		switch field.Format {
		case quotedScalar:
			sb.WriteString(field.Target + ": " + quoteScalar(value.String()) + "\n")
		case inlineArray:
			items := value.List()
			if len(items) == 0 {
				continue
			}
			sb.WriteString(field.Target + ": " + encodeArray(items) + "\n")
		}
	}

	sb.WriteString(yamlDelimiter + "\n")
	return sb.String()
}

func lookup(record *models.Record, sources []string) (models.Value, bool) {
	for _, key := range sources {
		if record.Present(key) {
			v, _ := record.Get(key)
			return v, true
		}
	}
	return models.Value{}, false
}

// deriveDescription joins categories, or tags if there are no categories. A
// scalar counts as a one-item list, the same way it is emitted.
func deriveDescription(record *models.Record) models.Value {
	for _, key := range []string{"categories", "tags"} {
		if v, ok := record.Get(key); ok {
			if items := v.List(); len(items) > 0 {
				return models.Scalar(strings.Join(items, ", "))
			}
		}
	}
	return models.Scalar("")
}

// quoteScalar writes a YAML single-quoted scalar.
func quoteScalar(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func encodeArray(items []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(items) // a []string cannot fail to encode
	return strings.TrimSuffix(buf.String(), "\n")
}
