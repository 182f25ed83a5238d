//go:build !windows

package device

import (
	"errors"
	"os"
	"strings"
)

// machineID reads the systemd machine ID, falling back to the dbus copy on
// systems that only populate one of the two.
func machineID() (string, error) {
	for _, path := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}
	return "", errors.New("machine id unavailable")
}
