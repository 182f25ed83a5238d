//go:build windows

package device

import (
	"golang.org/x/sys/windows/registry"
)

// machineID reads the MachineGuid assigned at Windows installation time.
func machineID() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Cryptography`, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", err
	}
	defer key.Close()

	guid, _, err := key.GetStringValue("MachineGuid")
	if err != nil {
		return "", err
	}
	return guid, nil
}
