package pathvars

import "strings"

// Vars carries the caller-supplied context for <root>, <game>, and <base>.
// An empty field means that context is unavailable; templates referencing it
// fail with UnimplementedVariableError.
type Vars struct {
	Game string
	Root string
}

// placeholder substituted when a game name sanitizes down to nothing.
const emptyGamePlaceholder = "untitled"

// specialFolders lists the logical variables resolved through Env.folder.
var specialFolders = []string{
	"winAppData",
	"winLocalAppData",
	"winLocalAppDataLow",
	"winDocuments",
	"winPublic",
	"winProgramData",
	"winDir",
	"xdgData",
	"xdgConfig",
}

// Resolve expands a save-path template into a concrete path string.
//
// Expansion runs in three steps: %NAME% environment references first, then
// the fixed set of bracketed logical variables, then a final sweep that
// rejects any leftover <...> token as UnknownVariableError. A missing
// environment variable or special folder fails with DirNotFoundError; <game>
// and <base> without game context, or <root>/<base> without root context,
// fail with UnimplementedVariableError.
func Resolve(template string, env *Env, vars Vars) (string, error) {
	out := template
	if strings.Contains(out, "%") {
		expanded, err := expandPercentVars(out, env)
		if err != nil {
			return "", err
		}
		out = expanded
	}

	if !strings.Contains(out, "<") && !strings.Contains(out, ">") {
		return out, nil
	}

	if strings.Contains(out, "<home>") {
		home, err := env.Home()
		if err != nil {
			return "", err
		}
		out = strings.ReplaceAll(out, "<home>", home)
	}

	if strings.Contains(out, "<osUserName>") {
		name, ok := env.username()
		if !ok || name == "" {
			return "", &DirNotFoundError{Name: "os user name"}
		}
		out = strings.ReplaceAll(out, "<osUserName>", name)
	}

	if strings.Contains(out, "<root>") {
		if vars.Root == "" {
			return "", &UnimplementedVariableError{Token: "<root>"}
		}
		out = strings.ReplaceAll(out, "<root>", vars.Root)
	}

	if strings.Contains(out, "<game>") {
		if vars.Game == "" {
			return "", &UnimplementedVariableError{Token: "<game>"}
		}
		out = strings.ReplaceAll(out, "<game>", SanitizeGameName(vars.Game))
	}

	if strings.Contains(out, "<base>") {
		if vars.Game == "" {
			return "", &UnimplementedVariableError{Token: "<base>"}
		}
		if vars.Root == "" {
			return "", &UnimplementedVariableError{Token: "<root>"}
		}
		out = strings.ReplaceAll(out, "<base>", vars.Root+"/"+SanitizeGameName(vars.Game))
	}

	for _, name := range specialFolders {
		token := "<" + name + ">"
		if !strings.Contains(out, token) {
			continue
		}
		dir, err := env.folder(name)
		if err != nil {
			return "", err
		}
		out = strings.ReplaceAll(out, token, dir)
	}

	if strings.Contains(out, "<") && strings.Contains(out, ">") {
		return "", &UnknownVariableError{Token: leftmostToken(out)}
	}

	return out, nil
}

// leftmostToken extracts the first <...> token still present. When the
// closing bracket is missing the remainder of the string is reported.
func leftmostToken(s string) string {
	start := strings.Index(s, "<")
	rest := s[start:]
	if end := strings.Index(rest, ">"); end >= 0 {
		return rest[:end+1]
	}
	return rest
}

// gameNameReplacer maps characters that are invalid in file names to
// underscores.
var gameNameReplacer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// SanitizeGameName makes a game display name safe for use as a path segment.
// Invalid characters become underscores, trailing spaces and dots are
// stripped, and an empty result falls back to a fixed placeholder.
func SanitizeGameName(name string) string {
	out := gameNameReplacer.Replace(name)
	out = strings.TrimRight(out, " .")
	if out == "" {
		return emptyGamePlaceholder
	}
	return out
}

// expandPercentVars expands %NAME% environment references. An unpaired % is
// kept literally together with the rest of the string, %% collapses to a
// single percent, and a reference to an unset variable fails with
// DirNotFoundError.
func expandPercentVars(s string, env *Env) (string, error) {
	var out strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c != '%' {
			out.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			out.WriteString(s[i:])
			break
		}
		name := s[i+1 : i+1+end]
		i += end + 2

		if name == "" {
			out.WriteByte('%')
			continue
		}
		value, ok := env.LookupEnv(name)
		if !ok {
			return "", &DirNotFoundError{Name: "ENV:" + name}
		}
		out.WriteString(value)
	}
	return out.String(), nil
}
