// Package progress throttles scan progress events for UI consumers. Step
// transitions always get through immediately; updates within a step are
// rate-limited and exact duplicates are dropped.
package progress
