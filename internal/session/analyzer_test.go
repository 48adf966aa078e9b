package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirsize/internal/fstree"
	"dirsize/internal/model"
)

var puzzleThresholds = model.Thresholds{Limit: 100000, DiskSize: 70000000, Needed: 30000000}

func TestAnalyzeFileSample(t *testing.T) {
	a, err := NewAnalyzer(puzzleThresholds).AnalyzeFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	res := a.Result

	assert.Equal(t, int64(48381165), res.TotalSize)
	assert.Equal(t, int64(95437), res.SumUnderLimit)
	assert.Equal(t, int64(8381165), res.RequiredFree)
	require.NotNil(t, res.Candidate)
	assert.Equal(t, "/d", res.Candidate.Path)
	assert.Equal(t, int64(24933642), res.Candidate.Size)
	assert.Equal(t, 10, res.FileCount)
	assert.Equal(t, 10, res.Commands)

	require.Len(t, res.Directories, 4)
	want := []model.DirInfo{
		{Path: "/", Name: "/", Depth: 0, Size: 48381165, Files: 2, Subdirs: 2},
		{Path: "/a", Name: "a", Depth: 1, Size: 94853, Files: 3, Subdirs: 1, UnderLimit: true},
		{Path: "/a/e", Name: "e", Depth: 2, Size: 584, Files: 1, UnderLimit: true},
		{Path: "/d", Name: "d", Depth: 1, Size: 24933642, Files: 4, Candidate: true},
	}
	assert.Equal(t, want, res.Directories)
	assert.Empty(t, res.Diagnostics)
}

func TestAnalyzeNothingToFree(t *testing.T) {
	cmds := []model.Command{model.List(model.FileEntry("f", 10))}
	a, err := NewAnalyzer(puzzleThresholds).Analyze(cmds)
	require.NoError(t, err)

	assert.Equal(t, int64(0), a.Result.RequiredFree)
	assert.Nil(t, a.Result.Candidate)
	assert.Contains(t, a.Result.Diagnostics, "enough space is already free; nothing needs deleting")
}

func TestAnalyzeDiagnostics(t *testing.T) {
	cmds := []model.Command{
		model.List(model.FileEntry("f", 10), model.DirEntry("never")),
		model.List(model.FileEntry("f", 12)),
	}
	a, err := NewAnalyzer(model.Thresholds{Limit: 100, DiskSize: 100, Needed: 95}).Analyze(cmds)
	require.NoError(t, err)

	assert.Equal(t, int64(5), a.Result.RequiredFree)
	require.NotNil(t, a.Result.Candidate)
	assert.Equal(t, "/", a.Result.Candidate.Path)
	assert.Len(t, a.Result.Diagnostics, 2)
	assert.Contains(t, a.Result.Diagnostics[0], "different size")
	assert.Contains(t, a.Result.Diagnostics[1], "no recorded contents")
}

func TestAnalyzeKeepsTree(t *testing.T) {
	a, err := NewAnalyzer(puzzleThresholds).AnalyzeFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)

	e := a.Tree.Find("/a/e")
	require.NotNil(t, e)
	assert.Equal(t, int64(584), a.Sizes.SizeOf(e))
	assert.Equal(t, 4, a.Sizes.Computed(), "every directory was sized exactly once")
}

func TestAnalyzeFileNavigationError(t *testing.T) {
	_, err := NewAnalyzer(puzzleThresholds).AnalyzeFile(filepath.Join("testdata", "bad_parent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fstree.ErrNavigation)

	var ctxErr *ContextError
	require.True(t, errors.As(err, &ctxErr))
	assert.Equal(t, 6, ctxErr.Context.LineNumber)
	assert.Equal(t, "$ cd ..", ctxErr.Context.Target)
	assert.Contains(t, err.Error(), ">    6 | $ cd ..")
}

func TestAnalyzeFileMissing(t *testing.T) {
	_, err := NewAnalyzer(puzzleThresholds).AnalyzeFile(filepath.Join("testdata", "nope.txt"))
	assert.Error(t, err)
}

func TestWithContextPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, WithContext(plain, nil))

	noLine := &fstree.ReplayError{Cmd: model.Parent(), Err: fstree.ErrNavigation}
	assert.Equal(t, error(noLine), WithContext(noLine, []string{"x"}))
}
