package pathvars

import (
	"os"
	"os/user"
	"path/filepath"
)

// Platform tags used throughout the scan pipeline.
const (
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
)

// Env supplies the lookups Resolve needs: environment variables, the home
// directory, and the current OS user name. It never probes the filesystem.
type Env struct {
	platform string
	lookup   func(string) (string, bool)
	home     func() (string, error)
	username func() (string, bool)
}

// NewEnv builds an Env backed by the live process environment.
func NewEnv(platform string) *Env {
	return &Env{
		platform: platform,
		lookup:   os.LookupEnv,
		home:     os.UserHomeDir,
		username: osUsername,
	}
}

// NewStaticEnv builds an Env backed entirely by the provided variable map.
// The home directory comes from USERPROFILE or HOME; the user name from
// USERNAME or USER. Intended for tests and for resolving templates against a
// synthetic machine layout.
func NewStaticEnv(platform string, vars map[string]string) *Env {
	lookup := func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
	return &Env{
		platform: platform,
		lookup:   lookup,
		home: func() (string, error) {
			if v, ok := vars["USERPROFILE"]; ok {
				return v, nil
			}
			if v, ok := vars["HOME"]; ok {
				return v, nil
			}
			return "", &DirNotFoundError{Name: "home directory"}
		},
		username: func() (string, bool) {
			if v, ok := vars["USERNAME"]; ok {
				return v, true
			}
			v, ok := vars["USER"]
			return v, ok
		},
	}
}

// Platform returns the platform tag the Env was built for.
func (e *Env) Platform() string { return e.platform }

// LookupEnv looks up one environment variable.
func (e *Env) LookupEnv(name string) (string, bool) { return e.lookup(name) }

// Home returns the current user's home directory.
func (e *Env) Home() (string, error) {
	h, err := e.home()
	if err != nil || h == "" {
		return "", &DirNotFoundError{Name: "home directory"}
	}
	return h, nil
}

func osUsername() (string, bool) {
	if v, ok := os.LookupEnv("USERNAME"); ok && v != "" {
		return v, true
	}
	if v, ok := os.LookupEnv("USER"); ok && v != "" {
		return v, true
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, true
	}
	return "", false
}

// folder resolves one platform special folder by variable name. Lookups that
// come back empty surface as DirNotFoundError so resolution fails loudly
// instead of producing a relative path.
func (e *Env) folder(name string) (string, error) {
	fromEnv := func(envName string) (string, error) {
		if v, ok := e.lookup(envName); ok && v != "" {
			return v, nil
		}
		return "", &DirNotFoundError{Name: envName}
	}
	fromHome := func(elem ...string) (string, error) {
		h, err := e.Home()
		if err != nil {
			return "", err
		}
		return filepath.Join(append([]string{h}, elem...)...), nil
	}
	envOrHome := func(envName string, elem ...string) (string, error) {
		if v, ok := e.lookup(envName); ok && v != "" {
			return v, nil
		}
		return fromHome(elem...)
	}

	switch name {
	case "winAppData":
		return envOrHome("APPDATA", "AppData", "Roaming")
	case "winLocalAppData":
		return envOrHome("LOCALAPPDATA", "AppData", "Local")
	case "winLocalAppDataLow":
		return fromHome("AppData", "LocalLow")
	case "winDocuments":
		return fromHome("Documents")
	case "winPublic":
		return fromEnv("PUBLIC")
	case "winProgramData":
		return fromEnv("PROGRAMDATA")
	case "winDir":
		return fromEnv("WINDIR")
	case "xdgData":
		return envOrHome("XDG_DATA_HOME", ".local", "share")
	case "xdgConfig":
		return envOrHome("XDG_CONFIG_HOME", ".config")
	}
	return "", &UnknownVariableError{Token: "<" + name + ">"}
}
