// Package index defines the grouped package index and its on-disk store.
//
// The grouped index is the canonical record of every known bucket, the
// fingerprint it was last scanned at, and the package versions found in it.
// It is persisted as a single JSON document and overwritten wholesale after
// each reconciliation pass.
package index
