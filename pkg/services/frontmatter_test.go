package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantBlock string
		wantBody  string
		wantErr   error
	}{
		{
			name:      "block and body",
			raw:       "---\ntitle: x\n---\nbody\n",
			wantBlock: "title: x",
			wantBody:  "body\n",
		},
		{
			name:      "body keeps later delimiters",
			raw:       "---\na: 1\n---\nintro\n---\noutro",
			wantBlock: "a: 1",
			wantBody:  "intro\n---\noutro",
		},
		{
			name:      "empty body",
			raw:       "---\na: 1\n---\n",
			wantBlock: "a: 1",
			wantBody:  "",
		},
		{name: "no delimiter", raw: "# Title\n\ntext", wantErr: ErrNotFrontMatter},
		{name: "empty file", raw: "", wantErr: ErrNotFrontMatter},
		{name: "unclosed", raw: "---\ntitle: x\nbody", wantErr: ErrInvalidFrontMatter},
		{name: "closing without newline", raw: "---\ntitle: x\n---", wantErr: ErrInvalidFrontMatter},
		{name: "opening not on its own line", raw: "----\ntitle: x\n---\n", wantErr: ErrInvalidFrontMatter},
		{name: "crlf line endings", raw: "---\r\ntitle: x\r\n---\r\nbody", wantErr: ErrInvalidFrontMatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, body, err := SplitFrontMatter(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBlock, block)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParseFrontMatter(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		fm, body, format, err := ParseFrontMatter([]byte("---\ntitle: 'Hi'\ntags: [\"a\",\"b\"]\n---\nbody"))
		require.NoError(t, err)
		assert.Equal(t, "yaml", format)
		assert.Equal(t, "Hi", fm["title"])
		assert.Equal(t, []interface{}{"a", "b"}, fm["tags"])
		assert.Equal(t, "body", body)
	})

	t.Run("yaml with crlf", func(t *testing.T) {
		fm, _, format, err := ParseFrontMatter([]byte("---\r\ntitle: Hi\r\n---\r\nbody"))
		require.NoError(t, err)
		assert.Equal(t, "yaml", format)
		assert.Equal(t, "Hi", fm["title"])
	})

	t.Run("toml", func(t *testing.T) {
		fm, body, format, err := ParseFrontMatter([]byte("+++\ntitle = \"Hi\"\n+++\nbody"))
		require.NoError(t, err)
		assert.Equal(t, "toml", format)
		assert.Equal(t, "Hi", fm["title"])
		assert.Equal(t, "body", body)
	})

	t.Run("json", func(t *testing.T) {
		fm, _, format, err := ParseFrontMatter([]byte(`{"title": "Hi"}`))
		require.NoError(t, err)
		assert.Equal(t, "json", format)
		assert.Equal(t, "Hi", fm["title"])
	})

	t.Run("empty yaml block", func(t *testing.T) {
		fm, _, _, err := ParseFrontMatter([]byte("---\n\n---\nbody"))
		require.NoError(t, err)
		assert.NotNil(t, fm)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, _, _, err := ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody"))
		assert.ErrorIs(t, err, ErrInvalidFrontMatter)
	})

	t.Run("plain markdown", func(t *testing.T) {
		_, _, _, err := ParseFrontMatter([]byte("# Title"))
		assert.Error(t, err)
	})
}
