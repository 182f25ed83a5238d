//go:build !windows

package scan

import "errors"

// steamRootFromRegistry has no registry to consult off Windows; root
// resolution falls through to the default locations.
func steamRootFromRegistry() (string, error) {
	return "", errors.New("registry unavailable on this platform")
}
