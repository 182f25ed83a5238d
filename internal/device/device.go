package device

import (
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// CurrentID returns a stable identifier for this machine. The OS machine ID
// is preferred; when unavailable a random UUID is generated, which stays
// constant for the process lifetime only.
var CurrentID = sync.OnceValue(func() string {
	if id, err := machineID(); err == nil {
		if id = strings.TrimSpace(id); id != "" {
			return id
		}
	}
	return uuid.NewString()
})

// Hostname returns the machine's hostname, or "unknown" when it cannot be
// determined.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "unknown"
	}
	return name
}
