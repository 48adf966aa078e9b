package main

import (
	"encoding/json"
	"fmt"
	"os"

	"dirsize/internal/config"
	"dirsize/internal/logging"
	"dirsize/internal/model"
	"dirsize/internal/session"
	"dirsize/internal/tui"
	"dirsize/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "dirsize",
		Repository: "dirsize",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		logging.Debug("update check failed", zap.Error(err))
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/dirsize/dirsize/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dirsize [options] <transcript|->\n\n")
		fmt.Fprintf(os.Stderr, "dirsize rebuilds a directory tree from a terminal transcript of\n")
		fmt.Fprintf(os.Stderr, "'$ cd' and '$ ls' commands and reports directory sizes.\n")
		fmt.Fprintf(os.Stderr, "Use '-' to read the transcript from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  DIRSIZE_LIMIT, DIRSIZE_DISK, DIRSIZE_NEED, DIRSIZE_ADDR,\n")
		fmt.Fprintf(os.Stderr, "  DIRSIZE_LOG_LEVEL, DIRSIZE_LOG_FORMAT supply defaults for the flags.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dirsize input.txt              # Browse the tree (TUI)\n")
		fmt.Fprintf(os.Stderr, "  dirsize -r input.txt           # Print the report to stdout\n")
		fmt.Fprintf(os.Stderr, "  dirsize -r -o r.txt input.txt  # Save report to file\n")
		fmt.Fprintf(os.Stderr, "  cat input.txt | dirsize -j -   # Output analysis as JSON\n")
		fmt.Fprintf(os.Stderr, "  dirsize -w input.txt           # Serve the web view\n")
	}

	cfg := config.Load()
	cfg.BindFlags(pflag.CommandLine)

	jsonFlag := pflag.BoolP("json", "j", false, "Output raw analysis data as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print a plain-text report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include the full directory listing in the report")
	webFlag := pflag.BoolP("web", "w", false, "Serve the web view on --addr")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("dirsize version %s\n", model.Version)
		return
	}

	if err := cfg.Validate(); err != nil {
		fail(err)
	}
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		fail(fmt.Errorf("init logging: %w", err))
	}
	defer logging.Sync()

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	path := pflag.Arg(0)

	if *webFlag {
		if path == session.Stdin {
			fail(fmt.Errorf("--web re-reads the transcript on each request and needs a file, not stdin"))
		}
		fmt.Printf("Starting dirsize web server at http://%s\n", cfg.Addr)
		if err := web.StartServer(cfg.Addr, path, cfg.Thresholds()); err != nil {
			fail(err)
		}
		return
	}

	if *reportFlag {
		runReportMode(path, cfg, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(path, cfg)
		return
	}

	// Default: TUI
	runTuiMode(path, cfg)
}

func analyze(path string, cfg *config.Config) model.AnalysisResult {
	a, err := session.NewAnalyzer(cfg.Thresholds()).AnalyzeFile(path)
	if err != nil {
		fail(err)
	}
	return a.Result
}

func runReportMode(path string, cfg *config.Config, outputFile string, verbose bool) {
	report := session.GenerateReport(analyze(path, cfg), verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fail(fmt.Errorf("writing report to %s: %w", outputFile, err))
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(path string, cfg *config.Config) {
	result := analyze(path, cfg)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fail(err)
	}
}

func runTuiMode(path string, cfg *config.Config) {
	if path == session.Stdin {
		fail(fmt.Errorf("the TUI reads keys from the terminal; use --report or --json with stdin"))
	}
	// Anything written to the terminal would tear the TUI.
	logging.InitNop()

	m := tui.InitialModel(path, cfg.Thresholds())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
