package scan

import (
	"log/slog"
	"path/filepath"

	"savescout/internal/logging"
	"savescout/internal/pathvars"
)

// Environment overrides, primarily for tests and unusual installs.
const (
	envSteamRootOverride   = "SAVESCOUT_STEAM_ROOT"
	envProgramDataOverride = "SAVESCOUT_PROGRAMDATA"
)

// Machine describes the host layout the scanners walk. Building it from a
// pathvars.Env keeps the scanners testable against synthetic layouts.
type Machine struct {
	Platform     string
	Home         string
	ProgramData  string
	ProgramFiles []string
	// SteamRoot, when set, bypasses registry and default-location lookup.
	SteamRoot string

	logger *slog.Logger
}

// DetectMachine resolves the host layout from the environment. Missing
// variables fall back to the stock Windows locations so scanners still probe
// something sensible on hosts with a stripped environment.
func DetectMachine(env *pathvars.Env, logger *slog.Logger) Machine {
	if logger == nil {
		logger = logging.NewNop()
	}

	m := Machine{Platform: env.Platform(), logger: logger}
	if home, err := env.Home(); err == nil {
		m.Home = home
	}

	if pd, ok := env.LookupEnv(envProgramDataOverride); ok && pd != "" {
		m.ProgramData = pd
	} else if pd, ok := env.LookupEnv("PROGRAMDATA"); ok && pd != "" {
		m.ProgramData = pd
	} else {
		m.ProgramData = `C:\ProgramData`
	}

	pf, ok := env.LookupEnv("PROGRAMFILES")
	if !ok || pf == "" {
		pf = `C:\Program Files`
	}
	pf86, ok := env.LookupEnv("PROGRAMFILES(X86)")
	if !ok || pf86 == "" {
		pf86 = `C:\Program Files (x86)`
	}
	m.ProgramFiles = []string{pf, pf86}

	if root, ok := env.LookupEnv(envSteamRootOverride); ok && root != "" {
		m.SteamRoot = root
	}
	return m
}

// Logger returns the machine's logger, never nil.
func (m *Machine) Logger() *slog.Logger {
	if m.logger == nil {
		return logging.NewNop()
	}
	return m.logger
}

// SetLogger replaces the machine's logger.
func (m *Machine) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

func (m *Machine) programFilesPath(elem ...string) []string {
	out := make([]string, 0, len(m.ProgramFiles))
	for _, root := range m.ProgramFiles {
		out = append(out, filepath.Join(append([]string{root}, elem...)...))
	}
	return out
}
