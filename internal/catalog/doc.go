// Package catalog loads and queries the reference database of known games.
//
// The primary store is a read-only SQLite database shipped with the
// application. A secondary import path accepts arbitrary external exports
// (JSON documents or foreign SQLite databases) and converts them
// best-effort: the first record type exposing a name-like field becomes the
// game table, alias-like and localized-name fields become aliases, and
// path-suggestive fields become synthetic save rules with a fixed moderate
// confidence. Imports are a bridge for unknown formats, not validated
// parsers; the result is cached as JSON for later loads.
//
// A loaded Catalog is immutable and safe for concurrent readers. Cache
// writes are flock-guarded and must be serialized against loads by the
// caller.
package catalog
