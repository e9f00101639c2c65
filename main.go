package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/juren53/pathmanager/internal/model"
	"github.com/juren53/pathmanager/internal/report"
	"github.com/juren53/pathmanager/internal/resolve"
	"github.com/juren53/pathmanager/internal/tui"
	"github.com/juren53/pathmanager/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "juren53",
		Repository: "pathmanager",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/juren53/pathmanager/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pathmanager [options]\n\n")
		fmt.Fprintf(os.Stderr, "pathmanager inspects your system PATH and attributes each entry to its source.\n")
		fmt.Fprintf(os.Stderr, "On Windows, entries are classified as User or Machine based on the registry;\n")
		fmt.Fprintf(os.Stderr, "elsewhere the PATH environment variable is shown as-is. Missing directories\n")
		fmt.Fprintf(os.Stderr, "are flagged. The tool is read-only: it never modifies your PATH.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pathmanager              # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  pathmanager --report     # Print diagnostic report to stdout\n")
		fmt.Fprintf(os.Stderr, "  pathmanager -r -a        # Report with every entry, no truncation\n")
		fmt.Fprintf(os.Stderr, "  pathmanager -r -o r.txt  # Save report to file\n")
		fmt.Fprintf(os.Stderr, "  pathmanager --json       # Output the snapshot as JSON\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output the resolved snapshot as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a diagnostic report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	allFlag := pflag.BoolP("all", "a", false, "Show every entry in the report instead of truncating long lists")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Enable debug logging (shows degraded store reads)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("pathmanager version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *webFlag {
		web.StartServer()
		return
	}

	if *reportFlag {
		runReportMode(*outputFlag, *allFlag)
		return
	}

	if *jsonFlag {
		runJSONMode()
		return
	}

	// Default: TUI
	runTUIMode()
}

// resolveSnapshot builds the snapshot or exits. The only hard failure
// is a missing PATH variable; degraded store reads are silent.
func resolveSnapshot() *model.Snapshot {
	snap, err := resolve.NewResolver().Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return snap
}

func runReportMode(outputFile string, showAll bool) {
	snap := resolveSnapshot()

	limit := report.DefaultLimit
	if showAll {
		limit = 0
	}
	text := report.Render(snap, limit)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(text), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(text)
	}
}

func runJSONMode() {
	snap := resolveSnapshot()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(snap)
}

func runTUIMode() {
	m := tui.InitialModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
