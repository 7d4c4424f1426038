package services

import (
	"testing"

	"astro-blog/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyBlock_Scalars(t *testing.T) {
	record := ParseLegacyBlock("title: 'Hello: World'\ndate: 2020-01-01 10:00:00\nauthor: \"me\"\nslug: plain\nmismatched: 'half\"")

	assert.Equal(t, []string{"title", "date", "author", "slug", "mismatched"}, record.Keys())
	title, _ := record.Get("title")
	assert.Equal(t, models.Scalar("Hello: World"), title)
	date, _ := record.Get("date")
	assert.Equal(t, "2020-01-01 10:00:00", date.Scalar)
	author, _ := record.Get("author")
	assert.Equal(t, "me", author.Scalar)
	mismatched, _ := record.Get("mismatched")
	assert.Equal(t, `'half"`, mismatched.Scalar)
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`'a'`, "a"},
		{`"a"`, "a"},
		{`''`, ""},
		{`'`, ""},
		{`"`, ""},
		{`'a`, `'a`},
		{`'a"`, `'a"`},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unquote(tt.in), tt.in)
	}

	record := ParseLegacyBlock("title: '")
	title, ok := record.Get("title")
	require.True(t, ok)
	assert.Equal(t, models.Scalar(""), title)
	assert.False(t, record.Present("title"))
}

func TestParseLegacyBlock_BlockArray(t *testing.T) {
	record := ParseLegacyBlock("tags:\n  - 'a'\n  - 'b'")

	tags, ok := record.Get("tags")
	require.True(t, ok)
	assert.True(t, tags.IsSequence())
	assert.Equal(t, []string{"a", "b"}, tags.Items)
}

func TestParseLegacyBlock_InlineMatchesBlock(t *testing.T) {
	block := ParseLegacyBlock("tags:\n  - a\n  - \"b\"")
	inline := ParseLegacyBlock("tags: [a, b]")
	quoted := ParseLegacyBlock(`tags: ['a', "b"]`)

	b, _ := block.Get("tags")
	i, _ := inline.Get("tags")
	q, _ := quoted.Get("tags")
	assert.Equal(t, b, i)
	assert.Equal(t, b, q)
	assert.Equal(t, []string{"a", "b"}, i.Items)
}

func TestParseLegacyBlock_BlockArrayTermination(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
		next  string
	}{
		{
			name:  "ends at next key",
			block: "tags:\n- a\n- b\ntitle: T",
			want:  []string{"a", "b"},
			next:  "title",
		},
		{
			name:  "ends at blank line",
			block: "tags:\n- a\n\n- orphan\ntitle: T",
			want:  []string{"a"},
			next:  "title",
		},
		{
			name:  "tolerates text without colon",
			block: "tags:\n- a\n  continued text\n- b\ntitle: T",
			want:  []string{"a", "b"},
			next:  "title",
		},
		{
			name:  "item containing a colon",
			block: "links:\n- 'https://example.com'\n- b\ntitle: T",
			want:  []string{"https://example.com", "b"},
			next:  "title",
		},
		{
			name:  "runs to end of block",
			block: "categories:\n  - Tech\n  - Life",
			want:  []string{"Tech", "Life"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := ParseLegacyBlock(tt.block)
			keys := record.Keys()
			v, ok := record.Get(keys[0])
			require.True(t, ok)
			assert.Equal(t, tt.want, v.Items)
			if tt.next != "" {
				assert.Equal(t, tt.next, keys[len(keys)-1])
			} else {
				assert.Len(t, keys, 1)
			}
		})
	}
}

func TestClassifyBlockLine(t *testing.T) {
	tests := []struct {
		line string
		want blockLine
	}{
		{"- item", blockItem},
		{"- key: value", blockItem},
		{"continued", blockSkip},
		{"-nospace", blockSkip},
		{"", blockEnd},
		{"title: x", blockEnd},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyBlockLine(tt.line), tt.line)
	}
}

func TestParseLegacyBlock_EdgeCases(t *testing.T) {
	record := ParseLegacyBlock("\nno colon here\nempty:\ntags: []\nbroken: [a, b\ntitle: first\ntitle: second")

	empty, ok := record.Get("empty")
	require.True(t, ok)
	assert.Equal(t, models.Scalar(""), empty)

	tags, _ := record.Get("tags")
	assert.True(t, tags.IsSequence())
	assert.Empty(t, tags.Items)

	broken, _ := record.Get("broken")
	assert.Equal(t, models.Scalar("[a, b"), broken)

	title, _ := record.Get("title")
	assert.Equal(t, "second", title.Scalar)
	assert.Equal(t, []string{"empty", "tags", "broken", "title"}, record.Keys())
}
