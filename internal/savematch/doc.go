// Package savematch locates on-disk save directories for a detected game.
// Curated catalog rules are resolved and probed first; two heuristics then
// cover games the rules miss: install-relative layouts under the game's own
// directory, and name matches inside the usual per-user save roots.
package savematch
