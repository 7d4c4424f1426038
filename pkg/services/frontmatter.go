package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	yamlDelimiter = "---"
	tomlDelimiter = "+++"
)

var (
	ErrNotFrontMatter     = errors.New("no frontmatter")
	ErrInvalidFrontMatter = errors.New("invalid frontmatter")
	ErrAlreadyConverted   = errors.New("already converted")
	errUnknownFormat      = errors.New("unknown format")
)

// SplitFrontMatter separates a "---" delimited metadata block from the body.
// The text must have the shape "---\n<block>\n---\n<body>"; the body is
// returned untouched.
func SplitFrontMatter(raw string) (block string, body string, err error) {
	return splitDelimited(raw, yamlDelimiter)
}

func splitDelimited(raw, delim string) (string, string, error) {
	if !strings.HasPrefix(raw, delim) {
		return "", "", ErrNotFrontMatter
	}
	rest, ok := strings.CutPrefix(raw, delim+"\n")
	if !ok {
		return "", "", ErrInvalidFrontMatter
	}
	closing := "\n" + delim + "\n"
	end := strings.Index(rest, closing)
	if end < 0 {
		return "", "", ErrInvalidFrontMatter
	}
	return rest[:end], rest[end+len(closing):], nil
}

// ParseFrontMatter reads target-schema frontmatter in any of the formats the
// content collection accepts.
func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := strings.ReplaceAll(string(content), "\r\n", "\n")

	// Check for YAML (---)
	if block, body, err := splitDelimited(str, yamlDelimiter); err == nil {
		var fm map[string]interface{}
		if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
			return nil, "", "", fmt.Errorf("%w: yaml: %v", ErrInvalidFrontMatter, err)
		}
		return orEmpty(fm), body, "yaml", nil
	} else if !errors.Is(err, ErrNotFrontMatter) {
		return nil, "", "", err
	}

	// Check for TOML (+++)
	if block, body, err := splitDelimited(str, tomlDelimiter); err == nil {
		var fm map[string]interface{}
		if err := toml.Unmarshal([]byte(block), &fm); err != nil {
			return nil, "", "", fmt.Errorf("%w: toml: %v", ErrInvalidFrontMatter, err)
		}
		return orEmpty(fm), body, "toml", nil
	} else if !errors.Is(err, ErrNotFrontMatter) {
		return nil, "", "", err
	}

	// Check for JSON ({)
	if strings.HasPrefix(strings.TrimSpace(str), "{") {
		var fm map[string]interface{}
		if err := json.Unmarshal(content, &fm); err != nil {
			return nil, "", "", fmt.Errorf("%w: json: %v", ErrInvalidFrontMatter, err)
		}
		return orEmpty(fm), "", "json", nil
	}

	return nil, "", "", errUnknownFormat
}

func orEmpty(fm map[string]interface{}) map[string]interface{} {
	if fm == nil {
		return map[string]interface{}{}
	}
	return fm
}
