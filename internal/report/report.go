// Package report renders a resolved snapshot as plain text. All
// functions are pure: they read the snapshot and format strings, with
// no I/O and no failure modes.
package report

import (
	"fmt"
	"strings"

	"github.com/juren53/pathmanager/internal/model"
)

// DefaultLimit is the number of entries shown before the listing is
// truncated. A limit of zero or less shows everything.
const DefaultLimit = 25

const timestampFormat = "2006-01-02 15:04:05"

// Header renders the system-information block from the snapshot's
// captured host metadata.
func Header(host model.HostInfo) string {
	rule := strings.Repeat("=", 60)
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("PathManager - System Information\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Machine Name: %s\n", host.MachineName)
	fmt.Fprintf(&b, "Operating System: %s %s\n", host.OSName, host.OSVersion)
	fmt.Fprintf(&b, "Hardware: %s\n", host.Hardware)
	fmt.Fprintf(&b, "Date: %s\n", host.Timestamp.Format(timestampFormat))
	b.WriteString(rule + "\n")
	return b.String()
}

// Listing renders the numbered entry list. Provenance markers appear
// only when the snapshot has scope classification; missing directories
// are flagged [NOT FOUND].
func Listing(snap *model.Snapshot, limit int) string {
	rule := strings.Repeat("#", 20)
	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "System PATH Entries (%d total)\n", len(snap.Entries))
	b.WriteString(rule + "\n\n")

	shown := len(snap.Entries)
	if limit > 0 && shown > limit {
		shown = limit
	}

	for _, entry := range snap.Entries[:shown] {
		marker := ""
		if snap.IsScoped() {
			if m := entry.Provenance.Marker(); m != "" {
				marker = " " + m
			}
		}
		missing := ""
		if !entry.Exists {
			missing = " [NOT FOUND]"
		}
		fmt.Fprintf(&b, "%02d | %s%s%s\n", entry.Index+1, entry.Path, marker, missing)
	}

	if rest := len(snap.Entries) - shown; rest > 0 {
		fmt.Fprintf(&b, "... and %d more (use --all to show every entry)\n", rest)
	}

	return b.String()
}

// Summary renders the per-scope counts and legend. It returns "" when
// the snapshot has no scope classification, matching the reference
// behavior of printing the summary on Windows only.
func Summary(snap *model.Snapshot) string {
	if !snap.IsScoped() {
		return ""
	}
	var b strings.Builder
	b.WriteString("Path Summary:\n")
	fmt.Fprintf(&b, "  User PATH entries: %d\n", len(snap.UserScope))
	fmt.Fprintf(&b, "  Machine PATH entries: %d\n", len(snap.MachineScope))
	fmt.Fprintf(&b, "  Combined PATH entries: %d\n", len(snap.Entries))
	b.WriteString("\nLegend: [U] = User PATH, [M] = Machine PATH\n")
	return b.String()
}

// Render produces the full diagnostic report: header, listing and, on
// scoped snapshots, the summary block.
func Render(snap *model.Snapshot, limit int) string {
	var b strings.Builder
	b.WriteString(Header(snap.Host))
	b.WriteString("\n")
	b.WriteString(Listing(snap, limit))
	if summary := Summary(snap); summary != "" {
		b.WriteString("\n")
		b.WriteString(summary)
	}
	return b.String()
}
