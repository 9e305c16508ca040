package index

// GroupedIndex maps a bucket name to the packages last observed in it.
type GroupedIndex map[string]*BucketEntry

// BucketEntry records one bucket's last-seen fingerprint and its packages.
// Hash is nil for buckets without a usable fingerprint; such buckets are
// rescanned on every reconciliation.
type BucketEntry struct {
	Hash     *string           `json:"hash"`
	Packages map[string]string `json:"packages"`
}

// New returns an empty grouped index.
func New() GroupedIndex {
	return make(GroupedIndex)
}

// Entry returns the entry for the named bucket, creating an empty one if the
// bucket is not yet represented.
func (g GroupedIndex) Entry(bucket string) *BucketEntry {
	entry, ok := g[bucket]
	if !ok || entry == nil {
		entry = &BucketEntry{Packages: make(map[string]string)}
		g[bucket] = entry
	}
	if entry.Packages == nil {
		entry.Packages = make(map[string]string)
	}
	return entry
}

// PackageCount returns the total number of packages across all buckets.
func (g GroupedIndex) PackageCount() int {
	total := 0
	for _, entry := range g {
		if entry != nil {
			total += len(entry.Packages)
		}
	}
	return total
}
