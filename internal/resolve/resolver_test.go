package resolve

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juren53/pathmanager/internal/model"
)

// fakeStores implements StoreReader for tests.
type fakeStores struct {
	user       string
	userErr    error
	machine    string
	machineErr error
}

func (f fakeStores) ReadUser() (string, error)    { return f.user, f.userErr }
func (f fakeStores) ReadMachine() (string, error) { return f.machine, f.machineErr }

func newTestResolver(path, sep string, stores StoreReader) *Resolver {
	return &Resolver{
		LookupEnv: func(key string) (string, bool) {
			if key == "PATH" {
				return path, true
			}
			return "", false
		},
		Stores:    stores,
		Probe:     func(string) bool { return true },
		Separator: sep,
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		sep   string
		want  []string
	}{
		{"empty string", "", ":", nil},
		{"separators only", ":::", ":", nil},
		{"semicolons only", ";;;", ";", nil},
		{"single entry", "/usr/bin", ":", []string{"/usr/bin"}},
		{"two entries", "/usr/bin:/bin", ":", []string{"/usr/bin", "/bin"}},
		{"trailing separator", "/usr/bin:", ":", []string{"/usr/bin"}},
		{"leading separator", ":/usr/bin", ":", []string{"/usr/bin"}},
		{"doubled separator", "/a::/b", ":", []string{"/a", "/b"}},
		{"windows style", `C:\A;C:\B`, ";", []string{`C:\A`, `C:\B`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.value, tt.sep))
		})
	}
}

func TestResolveAmbientOnly(t *testing.T) {
	r := newTestResolver("/usr/bin:/usr/local/bin", ":", nil)

	snap, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, snap.Entries, 2)
	assert.False(t, snap.IsScoped())
	for i, e := range snap.Entries {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, model.ProvenanceAmbient, e.Provenance)
	}
	assert.Equal(t, "/usr/bin", snap.Entries[0].Path)
	assert.Equal(t, "/usr/local/bin", snap.Entries[1].Path)
}

func TestResolveScoped(t *testing.T) {
	r := newTestResolver(`C:\A;C:\B;C:\C`, ";", fakeStores{
		machine: `C:\A`,
		user:    `C:\C`,
	})

	snap, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, snap.Entries, 3)
	assert.True(t, snap.IsScoped())
	assert.Equal(t, model.ProvenanceMachine, snap.Entries[0].Provenance)
	assert.Equal(t, model.ProvenanceAmbient, snap.Entries[1].Provenance)
	assert.Equal(t, model.ProvenanceUser, snap.Entries[2].Provenance)

	assert.Equal(t, []string{`C:\C`}, snap.UserScope)
	assert.Equal(t, []string{`C:\A`}, snap.MachineScope)
}

func TestClassifyTieBreak(t *testing.T) {
	// An entry present in both stores must always classify as machine.
	r := newTestResolver(`C:\Both`, ";", fakeStores{
		machine: `C:\Both`,
		user:    `C:\Both`,
	})

	snap, err := r.Resolve()
	require.NoError(t, err)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, model.ProvenanceMachine, snap.Entries[0].Provenance)
}

func TestClassifyExactMatchOnly(t *testing.T) {
	// Classification is a literal string comparison: case and trailing
	// slash variants do not match.
	r := newTestResolver(`C:\Tools;C:\tools\`, ";", fakeStores{
		machine: `C:\tools`,
	})

	snap, err := r.Resolve()
	require.NoError(t, err)
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, model.ProvenanceAmbient, snap.Entries[0].Provenance)
	assert.Equal(t, model.ProvenanceAmbient, snap.Entries[1].Provenance)
}

func TestResolveDegradedStores(t *testing.T) {
	// Unreadable stores never fail the resolve; classification degrades
	// to ambient and the snapshot reports itself unscoped.
	r := newTestResolver(`C:\A;C:\B`, ";", fakeStores{
		userErr:    errors.New("access denied"),
		machineErr: errors.New("key not found"),
	})

	snap, err := r.Resolve()
	require.NoError(t, err)

	assert.False(t, snap.IsScoped())
	assert.Empty(t, snap.UserScope)
	assert.Empty(t, snap.MachineScope)
	for _, e := range snap.Entries {
		assert.Equal(t, model.ProvenanceAmbient, e.Provenance)
	}
}

func TestResolveOneReadableStore(t *testing.T) {
	// A single readable store is enough for scoped mode; entries from
	// the unreadable scope fall back to ambient.
	r := newTestResolver(`C:\A;C:\B`, ";", fakeStores{
		machine: `C:\A`,
		userErr: errors.New("access denied"),
	})

	snap, err := r.Resolve()
	require.NoError(t, err)

	assert.True(t, snap.IsScoped())
	assert.Equal(t, model.ProvenanceMachine, snap.Entries[0].Provenance)
	assert.Equal(t, model.ProvenanceAmbient, snap.Entries[1].Provenance)
}

func TestResolveMissingPATH(t *testing.T) {
	r := &Resolver{
		LookupEnv: func(string) (string, bool) { return "", false },
		Probe:     func(string) bool { return true },
		Separator: ":",
	}

	_, err := r.Resolve()
	require.ErrorIs(t, err, ErrNoPath)
}

func TestResolveEmptyPATH(t *testing.T) {
	// Set-but-empty PATH is a legitimate zero-entry snapshot, not an error.
	r := newTestResolver("", ":", nil)

	snap, err := r.Resolve()
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
}

func TestResolveSeparatorsOnlyPATH(t *testing.T) {
	r := newTestResolver(":::", ":", nil)

	snap, err := r.Resolve()
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
}

func TestResolveIdempotent(t *testing.T) {
	// (path, index, provenance) are deterministic for a fixed snapshot;
	// only Exists may differ when the filesystem changes between calls.
	exists := true
	r := newTestResolver(`C:\A;C:\B`, ";", fakeStores{machine: `C:\A`})
	r.Probe = func(string) bool { return exists }

	first, err := r.Resolve()
	require.NoError(t, err)

	exists = false // simulate the filesystem changing between calls
	second, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, second.Entries, len(first.Entries))
	for i := range first.Entries {
		assert.Equal(t, first.Entries[i].Path, second.Entries[i].Path)
		assert.Equal(t, first.Entries[i].Index, second.Entries[i].Index)
		assert.Equal(t, first.Entries[i].Provenance, second.Entries[i].Provenance)

		assert.True(t, first.Entries[i].Exists)
		assert.False(t, second.Entries[i].Exists)
	}
}

func TestResolveExistenceProbe(t *testing.T) {
	// Default probe against the real filesystem: one existing and one
	// missing directory.
	existing := t.TempDir()
	missing := filepath.Join(existing, "does-not-exist")

	r := newTestResolver(existing+":"+missing, ":", nil)
	r.Probe = nil // use the default os.Stat probe

	snap, err := r.Resolve()
	require.NoError(t, err)

	require.Len(t, snap.Entries, 2)
	assert.True(t, snap.Entries[0].Exists)
	assert.False(t, snap.Entries[1].Exists)
}

func TestResolveCapturesHostInfo(t *testing.T) {
	r := newTestResolver("/usr/bin", ":", nil)

	snap, err := r.Resolve()
	require.NoError(t, err)

	assert.NotEmpty(t, snap.Host.MachineName)
	assert.NotEmpty(t, snap.Host.OSName)
	assert.False(t, snap.Host.Timestamp.IsZero())
}
