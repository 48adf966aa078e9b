package model

import (
	"fmt"
	"strings"
)

// LineContext represents a transcript line with surrounding context
type LineContext struct {
	Before2    string // Two lines before the target
	Before1    string // Line before the target
	Target     string // The actual target line
	After1     string // Line after the target
	After2     string // Two lines after the target
	LineNumber int    // Line number of the target
	HasBefore2 bool   // Whether there's a second line before
	HasBefore1 bool   // Whether there's a line before
	HasAfter1  bool   // Whether there's a line after
	HasAfter2  bool   // Whether there's a second line after
	ErrorMsg   string // Error message if the line is out of range
}

// GetLineContext returns the target line of a transcript with surrounding context
func GetLineContext(lines []string, lineNumber int) LineContext {
	result := LineContext{
		LineNumber: lineNumber,
	}

	// Check if line number is valid
	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (transcript has %d lines)", lineNumber, len(lines))
		return result
	}

	// Get the target line (convert to 0-indexed)
	result.Target = lines[lineNumber-1]

	// Get the lines before if they exist
	if lineNumber > 2 {
		result.Before2 = lines[lineNumber-3]
		result.HasBefore2 = true
	}
	if lineNumber > 1 {
		result.Before1 = lines[lineNumber-2]
		result.HasBefore1 = true
	}

	// Get the lines after if they exist
	if lineNumber < len(lines) {
		result.After1 = lines[lineNumber]
		result.HasAfter1 = true
	}
	if lineNumber+1 < len(lines) {
		result.After2 = lines[lineNumber+1]
		result.HasAfter2 = true
	}

	return result
}

// String renders the context as numbered lines with the target marked.
func (c LineContext) String() string {
	if c.ErrorMsg != "" {
		return c.ErrorMsg
	}
	var b strings.Builder
	row := func(n int, text string, mark bool) {
		prefix := "  "
		if mark {
			prefix = "> "
		}
		fmt.Fprintf(&b, "%s%4d | %s\n", prefix, n, text)
	}
	if c.HasBefore2 {
		row(c.LineNumber-2, c.Before2, false)
	}
	if c.HasBefore1 {
		row(c.LineNumber-1, c.Before1, false)
	}
	row(c.LineNumber, c.Target, true)
	if c.HasAfter1 {
		row(c.LineNumber+1, c.After1, false)
	}
	if c.HasAfter2 {
		row(c.LineNumber+2, c.After2, false)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
