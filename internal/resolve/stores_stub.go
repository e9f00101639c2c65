//go:build !windows

package resolve

// systemStores returns nil: unix-like systems have no scoped PATH
// stores, so the resolver runs in ambient-only mode and every entry
// classifies as ambient.
func systemStores() StoreReader {
	return nil
}
