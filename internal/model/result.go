package model

// Version is the dirsize release, overridden at build time with -ldflags.
var Version = "v0.3.0"

// DirInfo is one reconstructed directory with its aggregated size.
type DirInfo struct {
	Path       string // Slash path from root, e.g. /a/e
	Name       string
	Depth      int   // 0 for root
	Size       int64 // Total size of every file in the subtree
	Files      int   // Direct child files
	Subdirs    int   // Direct child directories
	UnderLimit bool  // Size < Thresholds.Limit
	Candidate  bool  // Smallest directory whose deletion frees enough space
}

// Thresholds are the query parameters used for an analysis.
type Thresholds struct {
	Limit    int64 // Bounded-sum query threshold
	DiskSize int64 // Total capacity of the device
	Needed   int64 // Free space required
}

// AnalysisResult contains the reconstructed tree and the answers to both queries.
type AnalysisResult struct {
	Thresholds    Thresholds
	Directories   []DirInfo // Pre-order
	FileCount     int
	TotalSize     int64 // Size of root
	SumUnderLimit int64 // Sum of sizes of directories under the limit
	RequiredFree  int64 // Space that must be freed, 0 when none
	Candidate     *DirInfo
	Commands      int
	Diagnostics   []string
}
