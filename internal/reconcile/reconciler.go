package reconcile

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/pkgseek/pkgseek/internal/index"
)

// Scanner enumerates buckets and produces their current package versions.
type Scanner interface {
	ListBuckets() []string
	ScanBucket(name string) map[string]string
	BucketPath(name string) string
}

// Fingerprinter reports a bucket directory's content identity. The boolean is
// false when no fingerprint is available, which marks the bucket as stale on
// every pass.
type Fingerprinter interface {
	Fingerprint(ctx context.Context, path string) (string, bool)
}

// Stats counts the package-level changes applied by one reconciliation pass.
type Stats struct {
	Added   int
	Removed int
	Updated int
}

// Zero reports whether the pass changed nothing.
func (s Stats) Zero() bool {
	return s == Stats{}
}

// Reconciler drives incremental index maintenance.
type Reconciler struct {
	scanner Scanner
	prints  Fingerprinter
}

// New creates a Reconciler over the given collaborators.
func New(scanner Scanner, prints Fingerprinter) *Reconciler {
	return &Reconciler{scanner: scanner, prints: prints}
}

// staleBucket is a bucket whose fingerprint differs from the recorded one,
// together with the fingerprint observed for it this pass.
type staleBucket struct {
	name    string
	hash    string
	hasHash bool
}

// Reconcile brings idx in line with the buckets currently on disk. The index
// is mutated in place, one bucket at a time, and returned together with the
// aggregate change counts. When no bucket's fingerprint changed, the input is
// returned untouched without any manifest scanning.
func (r *Reconciler) Reconcile(ctx context.Context, idx index.GroupedIndex) (index.GroupedIndex, Stats) {
	var stale []staleBucket
	for _, name := range r.scanner.ListBuckets() {
		hash, ok := r.prints.Fingerprint(ctx, r.scanner.BucketPath(name))
		if !changed(idx[name], hash, ok) {
			continue
		}
		stale = append(stale, staleBucket{name: name, hash: hash, hasHash: ok})
	}

	if len(stale) == 0 {
		return idx, Stats{}
	}

	var stats Stats
	for _, b := range stale {
		entry := idx.Entry(b.name)
		current := r.scanner.ScanBucket(b.name)

		for name, version := range current {
			previous, known := entry.Packages[name]
			switch {
			case !known:
				stats.Added++
			case previous != version:
				stats.Updated++
			}
			entry.Packages[name] = version
		}
		for name := range entry.Packages {
			if _, still := current[name]; !still {
				delete(entry.Packages, name)
				stats.Removed++
			}
		}

		// Record the fingerprint even when the package diff is empty, so a
		// metadata-only change does not force a rescan on every later pass.
		if b.hasHash {
			hash := b.hash
			entry.Hash = &hash
		} else {
			entry.Hash = nil
		}

		log.Debug("bucket reconciled", "bucket", b.name, "packages", len(entry.Packages))
	}

	return idx, stats
}

// changed reports whether a bucket must be rescanned. A bucket with no
// readable fingerprint is always stale, as is one with no prior entry.
func changed(entry *index.BucketEntry, hash string, hasHash bool) bool {
	if !hasHash {
		return true
	}
	if entry == nil || entry.Hash == nil {
		return true
	}
	return *entry.Hash != hash
}
