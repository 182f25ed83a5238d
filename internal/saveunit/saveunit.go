package saveunit

import (
	"os"
	"sort"

	"savescout/internal/savematch"
)

// Type distinguishes whole-directory units from single-file units.
type Type string

const (
	TypeFile   Type = "File"
	TypeFolder Type = "Folder"
)

// plausibleBonus is added to a unit's confidence when the directory's
// contents look like save data.
const plausibleBonus = 0.1

// Unit is one backup target. Paths maps a device identifier to the
// location on that device, so units synced across machines keep one entry
// per machine.
type Unit struct {
	Game              string            `json:"game"`
	Type              Type              `json:"unit_type"`
	Paths             map[string]string `json:"paths"`
	Confidence        float64           `json:"confidence"`
	DeleteBeforeApply bool              `json:"delete_before_apply"`
}

// Synthesize collapses match results into units for the given device.
// Matches whose path does not exist are dropped; duplicate paths keep the
// highest confidence. Directories whose contents look like save data get a
// confidence bonus, capped at 1.0. Output is ordered by descending
// confidence, then path.
func Synthesize(matches []savematch.Result, deviceID string) []Unit {
	type candidate struct {
		game       string
		path       string
		confidence float64
	}

	best := map[string]candidate{}
	for _, m := range matches {
		if !m.Exists || m.ResolvedPath == "" {
			continue
		}
		prev, ok := best[m.ResolvedPath]
		if !ok || m.Confidence > prev.confidence {
			best[m.ResolvedPath] = candidate{game: m.Game, path: m.ResolvedPath, confidence: m.Confidence}
		}
	}

	units := make([]Unit, 0, len(best))
	for _, c := range best {
		unitType, plausible := classify(c.path)
		confidence := c.confidence
		if plausible {
			confidence += plausibleBonus
		}
		if confidence > 1.0 {
			confidence = 1.0
		}
		units = append(units, Unit{
			Game:       c.game,
			Type:       unitType,
			Paths:      map[string]string{deviceID: c.path},
			Confidence: confidence,
		})
	}

	sort.Slice(units, func(i, j int) bool {
		if units[i].Confidence != units[j].Confidence {
			return units[i].Confidence > units[j].Confidence
		}
		return units[i].Paths[deviceID] < units[j].Paths[deviceID]
	})
	return units
}

// classify probes the path: directories become Folder units and earn the
// plausibility bonus when their contents look like saves; anything else is
// a File unit.
func classify(path string) (Type, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return TypeFile, false
	}
	return TypeFolder, savematch.LooksLikeSaveDir(path)
}
