package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirsize/internal/model"
)

func parse(t *testing.T, text string) *Transcript {
	t.Helper()
	tr, err := NewParser().Parse(strings.NewReader(text))
	require.NoError(t, err)
	return tr
}

func TestParseCommands(t *testing.T) {
	tr := parse(t, "$ cd /\n$ ls\ndir a\n123 b.txt\n$ cd a\n$ cd ..\n")

	require.Len(t, tr.Commands, 4)
	assert.Equal(t, model.CmdRoot, tr.Commands[0].Kind)
	assert.Equal(t, model.CmdList, tr.Commands[1].Kind)
	assert.Equal(t, []model.Entry{model.DirEntry("a"), model.FileEntry("b.txt", 123)}, tr.Commands[1].Entries)
	assert.Equal(t, model.CmdDescend, tr.Commands[2].Kind)
	assert.Equal(t, "a", tr.Commands[2].Name)
	assert.Equal(t, model.CmdParent, tr.Commands[3].Kind)

	lines := []int{1, 2, 5, 6}
	for i, cmd := range tr.Commands {
		assert.Equal(t, lines[i], cmd.Line)
	}
	assert.Len(t, tr.Lines, 6)
}

func TestParseToleratesCRLFAndBlankLines(t *testing.T) {
	tr := parse(t, "$ cd /\r\n\r\n$ ls\r\n10 f\r\n")
	require.Len(t, tr.Commands, 2)
	assert.Equal(t, []model.Entry{model.FileEntry("f", 10)}, tr.Commands[1].Entries)
	assert.Equal(t, "$ cd /", tr.Lines[0])
}

func TestParseNamesWithSpaces(t *testing.T) {
	tr := parse(t, "$ ls\ndir my dir\n5 my file.txt\n$ cd my dir\n")
	require.Len(t, tr.Commands, 2)
	assert.Equal(t, "my dir", tr.Commands[0].Entries[0].Name)
	assert.Equal(t, "my file.txt", tr.Commands[0].Entries[1].Name)
	assert.Equal(t, "my dir", tr.Commands[1].Name)
}

func TestParseEmptyListing(t *testing.T) {
	tr := parse(t, "$ ls\n$ cd x\n")
	require.Len(t, tr.Commands, 2)
	assert.Empty(t, tr.Commands[0].Entries)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		reason string
	}{
		{"listing before ls", "dir a\n", 1, "outside of ls"},
		{"listing after cd", "$ ls\ndir a\n$ cd a\n5 f\n", 4, "outside of ls"},
		{"unknown command", "$ rm -rf /\n", 1, "unknown command"},
		{"cd without target", "$ cd\n", 1, "cd needs a target"},
		{"ls with argument", "$ ls a\n", 1, "no arguments"},
		{"empty command", "$\n", 1, "empty command"},
		{"garbage listing", "$ ls\nhello\n", 2, "not a listing line"},
		{"negative size", "$ ls\n-5 f\n", 2, "not a listing line"},
		{"huge size", "$ ls\n99999999999999999999 f\n", 2, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Line)
			assert.Contains(t, parseErr.Reason, tt.reason)
		})
	}
}

func TestParserCustomPrompt(t *testing.T) {
	p := NewParser()
	p.Prompt = ">"
	tr, err := p.Parse(strings.NewReader("> cd /\n> ls\n1 f\n"))
	require.NoError(t, err)
	require.Len(t, tr.Commands, 2)
	assert.Equal(t, model.CmdRoot, tr.Commands[0].Kind)
}
