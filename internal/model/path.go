package model

import "time"

// Provenance identifies which persisted store contributed a PATH entry
// to the combined value the process sees.
type Provenance string

const (
	// ProvenanceUser means the entry was found verbatim in the
	// per-user persisted PATH.
	ProvenanceUser Provenance = "user"
	// ProvenanceMachine means the entry was found verbatim in the
	// machine-wide persisted PATH.
	ProvenanceMachine Provenance = "machine"
	// ProvenanceAmbient means the entry is present in the combined
	// PATH but could not be traced to either persisted store. On
	// platforms without scoped stores every entry is ambient.
	ProvenanceAmbient Provenance = "ambient"
)

// Marker returns the short bracket tag used in reports, or "" for
// ambient entries.
func (p Provenance) Marker() string {
	switch p {
	case ProvenanceUser:
		return "[U]"
	case ProvenanceMachine:
		return "[M]"
	}
	return ""
}

// PathEntry represents a single directory in the system PATH.
type PathEntry struct {
	Path       string     // The directory path, exactly as it appeared (e.g. /usr/bin)
	Index      int        // Zero-based position in the combined PATH; search order
	Provenance Provenance // Which store contributed it
	Exists     bool       // Existence probe result, taken once at snapshot time
}

// HostInfo is the host metadata captured when a snapshot is built.
// It is captured once and never re-queried for the snapshot's lifetime.
type HostInfo struct {
	MachineName string
	OSName      string
	OSVersion   string
	Hardware    string
	Timestamp   time.Time
}

// Snapshot is the resolved, immutable view of the search path for one
// invocation. Entries is the single source of truth for rendering; the
// raw scope lists are retained only for summary counts.
type Snapshot struct {
	Entries      []PathEntry
	UserScope    []string
	MachineScope []string
	Scoped       bool // true when at least one scoped store was read
	Host         HostInfo
}

// IsScoped reports whether provenance classification is meaningful on
// this snapshot. When false, every entry is ambient by construction.
func (s *Snapshot) IsScoped() bool {
	return s.Scoped
}

// Missing counts entries whose directory did not exist at snapshot time.
func (s *Snapshot) Missing() int {
	n := 0
	for _, e := range s.Entries {
		if !e.Exists {
			n++
		}
	}
	return n
}
