package env

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	e := newTestEnv(t,
		"PATH", "/opt/bin:/usr/bin",
		"DATA_DIR", "/opt/my data",
	)

	tests := []struct {
		format Format
		want   string
	}{
		{FormatSh, "export PATH=/opt/bin:/usr/bin\nexport DATA_DIR='/opt/my data'\n"},
		{FormatBash, "export PATH=/opt/bin:/usr/bin\nexport DATA_DIR='/opt/my data'\n"},
		{FormatCsh, "setenv PATH '/opt/bin:/usr/bin';\nsetenv DATA_DIR '/opt/my data';\n"},
		{FormatDotenv, "DATA_DIR=\"/opt/my data\"\nPATH=\"/opt/bin:/usr/bin\"\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, e, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRender_CshEscapesQuotes(t *testing.T) {
	e := newTestEnv(t, "MSG", "it's")
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, e, FormatCsh))
	assert.Equal(t, "setenv MSG 'it'\\''s';\n", buf.String())
}

func TestRender_CshHistoryAndNewlines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, newTestEnv(t, "MSG", "don't!"), FormatCsh))
	assert.Equal(t, "setenv MSG 'don'\\''t\\!';\n", buf.String())

	buf.Reset()
	err := Render(&buf, newTestEnv(t, "MSG", "two\nlines"), FormatCsh)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrenderable))
	assert.Empty(t, buf.String())
}

func TestRender_InvalidName(t *testing.T) {
	e := NewEnvironment()
	e.Set("BAD-NAME", "x")

	for _, f := range Formats() {
		var buf bytes.Buffer
		err := Render(&buf, e, f)
		assert.True(t, errors.Is(err, ErrUnrenderable), f)
		assert.Empty(t, buf.String(), f)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, NewEnvironment(), Format("fish"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestRender_Empty(t *testing.T) {
	for _, f := range Formats() {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, NewEnvironment(), f))
		assert.Empty(t, buf.String(), f)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csh")
	require.NoError(t, err)
	assert.Equal(t, FormatCsh, f)

	_, err = ParseFormat("zsh")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestReadDotenv(t *testing.T) {
	in := "# comment\nPATH=/usr/bin:/opt/bin:/usr/bin\nCET_PLUGIN_PATH=\"/opt/a/lib\"\n"
	e, err := ReadDotenv(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"CET_PLUGIN_PATH", "PATH"}, e.Names())
	assert.Equal(t, "/usr/bin:/opt/bin:/usr/bin", e.Get("PATH"))
	assert.Equal(t, "/opt/a/lib", e.Get("CET_PLUGIN_PATH"))
}
