// Package scan discovers installed games and their save locations. Source
// scanners (Steam libraries, Epic manifests, EA/Origin installed lists,
// common vendor directories) produce raw detections; aggregation dedupes
// them, enrichment swaps in catalog entries, and the save matcher resolves
// candidate save paths. Scanner failures degrade the result instead of
// aborting the scan.
package scan
