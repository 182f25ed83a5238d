// Package device derives a stable identifier for the current machine, used
// to key save-unit path maps so units synced between machines stay
// distinguishable.
package device
