package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"dirsize/internal/fstree"
	"dirsize/internal/logging"
	"dirsize/internal/metrics"
	"dirsize/internal/model"
)

// Analysis is a replayed tree together with the answers computed over it.
type Analysis struct {
	Result model.AnalysisResult
	Tree   *fstree.Tree
	Sizes  *fstree.Aggregator
}

// Analyzer replays a command sequence and runs the size queries on the result.
type Analyzer struct {
	thresholds model.Thresholds
}

func NewAnalyzer(thresholds model.Thresholds) *Analyzer {
	return &Analyzer{thresholds: thresholds}
}

// Analyze builds the tree described by cmds and answers both queries.
// Replay failures are returned as *fstree.ReplayError.
func (a *Analyzer) Analyze(cmds []model.Command) (*Analysis, error) {
	start := time.Now()
	log := logging.L().With(zap.Int("commands", len(cmds)))

	tree := fstree.New()
	if err := tree.Replay(cmds); err != nil {
		log.Warn("replay failed", zap.Error(err))
		return nil, err
	}
	for _, cmd := range cmds {
		metrics.RecordCommand(cmd.Kind.String())
	}
	stats := tree.Stats()
	metrics.RecordNodes(stats.Directories, stats.Files)
	metrics.RecordConflicts(stats.Conflicts)
	log.Debug("replay complete",
		zap.Int("directories", stats.Directories),
		zap.Int("files", stats.Files),
		zap.Int("conflicts", stats.Conflicts),
	)

	agg := fstree.NewAggregator()
	th := a.thresholds
	result := model.AnalysisResult{
		Thresholds: th,
		FileCount:  stats.Files,
		Commands:   len(cmds),
		TotalSize:  agg.SizeOf(tree.Root()),
	}
	result.SumUnderLimit = fstree.SumBelow(tree, agg, th.Limit)
	result.RequiredFree = fstree.RequiredFree(th.DiskSize, th.Needed, result.TotalSize)

	var candidate *fstree.Node
	if result.RequiredFree > 0 {
		var err error
		candidate, err = fstree.SmallestDirAtLeast(tree, agg, result.RequiredFree)
		if err != nil {
			return nil, fmt.Errorf("find directory of at least %d: %w", result.RequiredFree, err)
		}
	}

	candidateIdx := -1
	for _, d := range tree.AllDirectories() {
		info := describe(d, agg, th.Limit)
		if d == candidate {
			info.Candidate = true
			candidateIdx = len(result.Directories)
		}
		result.Directories = append(result.Directories, info)
	}
	if candidateIdx >= 0 {
		result.Candidate = &result.Directories[candidateIdx]
	}

	result.Diagnostics = diagnose(result, stats)

	metrics.RecordSizeComputations(agg.Computed())
	metrics.RecordAnalysis(time.Since(start))
	log.Debug("analysis complete",
		zap.Int64("total", result.TotalSize),
		zap.Int64("sum_under_limit", result.SumUnderLimit),
		zap.Int64("required_free", result.RequiredFree),
		zap.Duration("duration", time.Since(start)),
	)

	return &Analysis{Result: result, Tree: tree, Sizes: agg}, nil
}

// AnalyzeFile loads the transcript at path and analyzes it. On a replay
// failure the error carries the transcript lines around the failing command.
func (a *Analyzer) AnalyzeFile(path string) (*Analysis, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	analysis, err := a.Analyze(t.Commands)
	if err != nil {
		return nil, WithContext(err, t.Lines)
	}
	return analysis, nil
}

func describe(d *fstree.Node, agg *fstree.Aggregator, limit int64) model.DirInfo {
	info := model.DirInfo{
		Path:  d.Path(),
		Name:  d.Name(),
		Depth: d.Depth(),
		Size:  agg.SizeOf(d),
	}
	for _, c := range d.Children() {
		if c.IsDir() {
			info.Subdirs++
		} else {
			info.Files++
		}
	}
	info.UnderLimit = info.Size < limit
	return info
}

func diagnose(result model.AnalysisResult, stats fstree.Stats) []string {
	var diags []string
	if stats.Conflicts > 0 {
		diags = append(diags, fmt.Sprintf(
			"%d file(s) were listed again with a different size; the first size was kept", stats.Conflicts))
	}
	empty := 0
	for _, d := range result.Directories {
		if d.Files == 0 && d.Subdirs == 0 {
			empty++
		}
	}
	if empty > 0 {
		diags = append(diags, fmt.Sprintf(
			"%d directory(ies) have no recorded contents (empty, or never listed)", empty))
	}
	if result.RequiredFree == 0 {
		diags = append(diags, "enough space is already free; nothing needs deleting")
	}
	return diags
}
