//go:build windows

package resolve

import "golang.org/x/sys/windows/registry"

const pathValueName = "Path"

const (
	userEnvKey    = `Environment`
	machineEnvKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
)

// registryStores reads the persisted PATH values from the Windows
// registry. Values are returned literally, without expanding %VAR%
// references, so classification stays an exact string match against
// the ambient value (matching what the registry actually contains).
type registryStores struct{}

func systemStores() StoreReader {
	return registryStores{}
}

func (registryStores) ReadUser() (string, error) {
	return readPathValue(registry.CURRENT_USER, userEnvKey)
}

func (registryStores) ReadMachine() (string, error) {
	// Plain read access only; no admin rights needed.
	return readPathValue(registry.LOCAL_MACHINE, machineEnvKey)
}

func readPathValue(root registry.Key, keyPath string) (string, error) {
	k, err := registry.OpenKey(root, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(pathValueName)
	if err != nil {
		return "", err
	}
	return v, nil
}
