package services

import (
	"strings"

	"astro-blog/pkg/models"
)

// lineCursor walks the lines of a metadata block. Every line it hands out is
// already trimmed.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(block string) *lineCursor {
	return &lineCursor{lines: strings.Split(block, "\n")}
}

func (c *lineCursor) done() bool {
	return c.pos >= len(c.lines)
}

func (c *lineCursor) peek() (string, bool) {
	if c.done() {
		return "", false
	}
	return strings.TrimSpace(c.lines[c.pos]), true
}

func (c *lineCursor) next() string {
	line, _ := c.peek()
	c.pos++
	return line
}

// blockLine classifies a line that follows a bare "key:" line.
type blockLine int

const (
	blockItem blockLine = iota // "- value"
	blockSkip                  // text without a colon, tolerated
	blockEnd                   // blank line or a new key
)

func classifyBlockLine(line string) blockLine {
	switch {
	case strings.HasPrefix(line, "- "):
		return blockItem
	case line != "" && !strings.Contains(line, ":"):
		return blockSkip
	default:
		return blockEnd
	}
}

// ParseLegacyBlock parses a restricted YAML subset: "key: value" scalars,
// inline "[a, b]" arrays and dash-prefixed block arrays. Lines without a
// colon outside a block array are ignored.
func ParseLegacyBlock(block string) *models.Record {
	record := models.NewRecord()
	cur := newLineCursor(block)

	for !cur.done() {
		line := cur.next()
		key, value, ok := strings.Cut(line, ":")
		if line == "" || !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if value == "" {
			if nextLine, ok := cur.peek(); ok && strings.HasPrefix(nextLine, "- ") {
				record.Set(key, parseBlockArray(cur))
				continue
			}
		}

		if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
			record.Set(key, parseInlineArray(value))
			continue
		}

		record.Set(key, models.Scalar(unquote(value)))
	}

	return record
}

// parseBlockArray consumes lines until classifyBlockLine says the array is
// over. The terminating line is left for the caller.
func parseBlockArray(cur *lineCursor) models.Value {
	items := []string{}
	for {
		line, ok := cur.peek()
		if !ok {
			break
		}
		switch classifyBlockLine(line) {
		case blockItem:
			items = append(items, unquote(strings.TrimSpace(line[2:])))
		case blockSkip:
		case blockEnd:
			return models.Sequence(items...)
		}
		cur.pos++
	}
	return models.Sequence(items...)
}

func parseInlineArray(value string) models.Value {
	inner := strings.TrimSpace(value[1 : len(value)-1])
	if inner == "" {
		return models.Sequence()
	}
	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		items = append(items, trimQuoteChars(strings.TrimSpace(p)))
	}
	return models.Sequence(items...)
}

// unquote strips one layer of matching single or double quotes. A lone quote
// character counts as both ends and yields "".
func unquote(s string) string {
	for _, q := range []string{"'", `"`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			if len(s) == 1 {
				return ""
			}
			return s[1 : len(s)-1]
		}
	}
	return s
}

// trimQuoteChars drops one leading and one trailing quote character, matched
// or not.
func trimQuoteChars(s string) string {
	if strings.HasPrefix(s, "'") || strings.HasPrefix(s, `"`) {
		s = s[1:]
	}
	if strings.HasSuffix(s, "'") || strings.HasSuffix(s, `"`) {
		s = s[:len(s)-1]
	}
	return s
}
