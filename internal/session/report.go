package session

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"dirsize/internal/model"
)

// GenerateReport renders an analysis as plain text. Verbose adds the full
// directory listing.
func GenerateReport(result model.AnalysisResult, verbose bool) string {
	var sb strings.Builder
	th := result.Thresholds

	sb.WriteString("dirsize report\n")
	sb.WriteString("==============\n\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Commands replayed:\t%d\n", result.Commands)
	fmt.Fprintf(w, "Directories:\t%d\n", len(result.Directories))
	fmt.Fprintf(w, "Files:\t%d\n", result.FileCount)
	fmt.Fprintf(w, "Total size:\t%d\n", result.TotalSize)
	w.Flush()

	under := 0
	for _, d := range result.Directories {
		if d.UnderLimit {
			under++
		}
	}
	sb.WriteString("\nSmall directories\n")
	sb.WriteString("-----------------\n")
	w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Under %d:\t%d\n", th.Limit, under)
	fmt.Fprintf(w, "Sum of their sizes:\t%d\n", result.SumUnderLimit)
	w.Flush()

	sb.WriteString("\nFreeing space\n")
	sb.WriteString("-------------\n")
	w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Disk size:\t%d\n", th.DiskSize)
	fmt.Fprintf(w, "Needed free:\t%d\n", th.Needed)
	fmt.Fprintf(w, "Currently free:\t%d\n", th.DiskSize-result.TotalSize)
	fmt.Fprintf(w, "Must free:\t%d\n", result.RequiredFree)
	if result.Candidate != nil {
		fmt.Fprintf(w, "Delete:\t%s (%d)\n", result.Candidate.Path, result.Candidate.Size)
	} else {
		fmt.Fprintf(w, "Delete:\tnothing\n")
	}
	w.Flush()

	if len(result.Diagnostics) > 0 {
		sb.WriteString("\nDiagnostics\n")
		sb.WriteString("-----------\n")
		for _, d := range result.Diagnostics {
			sb.WriteString("  - " + d + "\n")
		}
	}

	if verbose {
		sb.WriteString("\nDirectories\n")
		sb.WriteString("-----------\n")
		w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
		for _, d := range result.Directories {
			icon := model.IconOK
			switch {
			case d.Candidate:
				icon = model.IconCandidate
			case d.UnderLimit:
				icon = model.IconUnder
			}
			fmt.Fprintf(w, "%d\t %s %s%s\n", d.Size, icon, strings.Repeat("  ", d.Depth), d.Name)
		}
		w.Flush()
		fmt.Fprintf(&sb, "\n  %s under the limit   %s delete candidate\n", model.IconUnder, model.IconCandidate)
	}

	return sb.String()
}
