package scan

import (
	"path/filepath"
	"strings"
)

// Dedupe collapses detections that point at the same install. The primary
// key is the normalized install path; detections without a path fall back
// to name plus source. First occurrence wins, so scanner ordering decides
// which source a duplicate is attributed to.
func Dedupe(items []DetectedGame) []DetectedGame {
	seen := make(map[string]struct{}, len(items))
	out := make([]DetectedGame, 0, len(items))
	for _, item := range items {
		var key string
		if item.InstallPath != "" {
			key = normalizePathKey(item.InstallPath)
		} else {
			key = strings.ToLower(item.Info.Name) + "::" + string(item.Source)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// normalizePathKey turns a path into a stable comparison key: symlinks are
// resolved best-effort, separators unified, the trailing separator dropped,
// and the result lowercased to absorb Windows case differences.
func normalizePathKey(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	s := strings.ReplaceAll(path, `\`, "/")
	s = strings.TrimRight(s, "/")
	return strings.ToLower(s)
}
