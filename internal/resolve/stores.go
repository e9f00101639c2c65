package resolve

// StoreReader reads the two persisted PATH values that the operating
// system merges into the ambient environment. Implementations are
// read-only; the resolver never writes to a store.
type StoreReader interface {
	// ReadUser returns the raw per-user persisted PATH value.
	ReadUser() (string, error)
	// ReadMachine returns the raw machine-wide persisted PATH value.
	ReadMachine() (string, error)
}
