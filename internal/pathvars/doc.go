// Package pathvars expands save-path templates into concrete filesystem
// paths.
//
// Templates combine OS-style environment references (%APPDATA%) with
// bracketed logical variables (<home>, <winAppData>, <game>, ...). Resolution
// is pure string work against an Env: the package performs environment and
// special-folder lookups but never touches the filesystem, so callers decide
// when (and whether) a resolved path is probed for existence.
package pathvars
