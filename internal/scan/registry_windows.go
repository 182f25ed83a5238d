//go:build windows

package scan

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

// steamRootFromRegistry tries the per-user Steam key first, then the 32-bit
// machine-wide key, accepting either the SteamPath or InstallPath value.
func steamRootFromRegistry() (string, error) {
	keys := []struct {
		root registry.Key
		path string
	}{
		{registry.CURRENT_USER, `Software\Valve\Steam`},
		{registry.LOCAL_MACHINE, `Software\WOW6432Node\Valve\Steam`},
	}

	for _, k := range keys {
		key, err := registry.OpenKey(k.root, k.path, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		for _, value := range []string{"SteamPath", "InstallPath"} {
			if path, _, err := key.GetStringValue(value); err == nil && path != "" {
				key.Close()
				return path, nil
			}
		}
		key.Close()
	}
	return "", errors.New("steam registry keys not present")
}
