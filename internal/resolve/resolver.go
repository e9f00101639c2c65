// Package resolve acquires the three candidate PATH lists (ambient,
// user scope, machine scope), classifies every ambient entry by
// provenance and probes each entry for existence.
//
// The ambient PATH a process sees is an OS-level merge of the persisted
// stores, so provenance is not directly traceable; the resolver
// reconciles it against the stores by exact string match.
package resolve

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/juren53/pathmanager/internal/model"
)

// ErrNoPath is returned when the PATH variable is absent from the
// process environment entirely. A PATH that is set but empty is not an
// error; it resolves to a zero-entry snapshot.
var ErrNoPath = errors.New("PATH is not set in the environment")

// Resolver builds immutable Snapshots from the live process
// environment and, where the platform has them, the persisted scope
// stores. The zero fields default to the host platform; tests override
// them.
type Resolver struct {
	LookupEnv func(string) (string, bool) // defaults to os.LookupEnv
	Stores    StoreReader                 // nil on platforms without scoped stores
	Probe     func(string) bool           // defaults to an os.Stat check
	Separator string                      // defaults to os.PathListSeparator
}

// NewResolver returns a Resolver wired to the host platform.
func NewResolver() *Resolver {
	return &Resolver{
		LookupEnv: os.LookupEnv,
		Stores:    systemStores(),
		Probe:     defaultProbe,
		Separator: string(os.PathListSeparator),
	}
}

// defaultProbe is a single stat per entry. Any failure (permission
// denied, broken symlink, missing) uniformly means "does not exist".
func defaultProbe(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SplitList splits a separator-delimited PATH value into its non-empty
// components. Leading, trailing and doubled separators never produce
// an empty entry.
func SplitList(value, sep string) []string {
	var out []string
	for _, p := range strings.Split(value, sep) {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Resolve captures one snapshot of the search path. Store reads are
// best effort: an unreadable store degrades that scope to an empty
// list and classification falls back to ambient, never to an error.
// The only escalated failure is a PATH variable that is missing from
// the environment altogether.
func (r *Resolver) Resolve() (*model.Snapshot, error) {
	ambient, ok := r.lookupEnv()("PATH")
	if !ok {
		return nil, ErrNoPath
	}
	combined := SplitList(ambient, r.sep())

	var userScope, machineScope []string
	scoped := false
	if r.Stores != nil {
		if v, err := r.Stores.ReadUser(); err != nil {
			log.Debug("user scope store unreadable", "err", err)
		} else {
			userScope = SplitList(v, r.sep())
			scoped = true
		}
		if v, err := r.Stores.ReadMachine(); err != nil {
			log.Debug("machine scope store unreadable", "err", err)
		} else {
			machineScope = SplitList(v, r.sep())
			scoped = true
		}
	}

	probe := r.Probe
	if probe == nil {
		probe = defaultProbe
	}

	entries := make([]model.PathEntry, 0, len(combined))
	for i, p := range combined {
		entries = append(entries, model.PathEntry{
			Path:       p,
			Index:      i,
			Provenance: classify(p, userScope, machineScope),
			Exists:     probe(p),
		})
	}

	return &model.Snapshot{
		Entries:      entries,
		UserScope:    userScope,
		MachineScope: machineScope,
		Scoped:       scoped,
		Host:         hostInfo(),
	}, nil
}

// classify attributes one combined entry to the store that contributed
// it. Machine scope is checked before user scope; an entry present in
// both always classifies as machine. Matching is an exact string
// comparison: no case folding, no trailing-slash normalization, so the
// result mirrors exactly what the stores contain.
func classify(path string, userScope, machineScope []string) model.Provenance {
	for _, p := range machineScope {
		if p == path {
			return model.ProvenanceMachine
		}
	}
	for _, p := range userScope {
		if p == path {
			return model.ProvenanceUser
		}
	}
	return model.ProvenanceAmbient
}

func (r *Resolver) lookupEnv() func(string) (string, bool) {
	if r.LookupEnv != nil {
		return r.LookupEnv
	}
	return os.LookupEnv
}

func (r *Resolver) sep() string {
	if r.Separator != "" {
		return r.Separator
	}
	return string(os.PathListSeparator)
}
