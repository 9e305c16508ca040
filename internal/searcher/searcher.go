// Package searcher flattens the grouped index into a query-optimized lookup
// and answers case-insensitive substring searches against it.
package searcher

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pkgseek/pkgseek/internal/index"
)

// separator joins a bucket name and a package name into a composite key.
// Bucket and package names are assumed not to contain it.
const separator = "/"

// queryCacheSize bounds the number of cached query results per searcher.
const queryCacheSize = 128

// FlatIndex maps composite "bucket/name" keys to versions. It is derived
// wholesale from a grouped index and never mutated independently.
type FlatIndex map[string]string

// Flatten derives the flat lookup from a grouped index.
func Flatten(idx index.GroupedIndex) FlatIndex {
	flat := make(FlatIndex, idx.PackageCount())
	for bucket, entry := range idx {
		if entry == nil {
			continue
		}
		for name, version := range entry.Packages {
			flat[bucket+separator+name] = version
		}
	}
	return flat
}

// Result is one search hit, split back into its package and bucket parts.
type Result struct {
	Name    string
	Version string
	Source  string
}

// Searcher answers substring queries against a flat index. Each Searcher owns
// its query cache; rebuilding the index means constructing a new Searcher, so
// stale cached results cannot outlive the index they were computed from.
type Searcher struct {
	flat  FlatIndex
	cache *lru.Cache[string, []Result]
}

// New creates a Searcher over the given flat index.
func New(flat FlatIndex) *Searcher {
	cache, err := lru.New[string, []Result](queryCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}
	return &Searcher{flat: flat, cache: cache}
}

// Size returns the number of entries in the underlying flat index.
func (s *Searcher) Size() int {
	return len(s.flat)
}

// Search returns all entries whose composite key contains query, compared
// case-insensitively. A query can therefore match a bucket name, a package
// name, or span the separator between them. Results are ordered by package
// name, then by source bucket. An empty query matches everything.
func (s *Searcher) Search(query string) []Result {
	needle := strings.ToLower(query)
	if cached, ok := s.cache.Get(needle); ok {
		return cached
	}

	var results []Result
	for key, version := range s.flat {
		if !strings.Contains(strings.ToLower(key), needle) {
			continue
		}
		source, name, _ := strings.Cut(key, separator)
		results = append(results, Result{Name: name, Version: version, Source: source})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].Source < results[j].Source
	})

	s.cache.Add(needle, results)
	return results
}
