// Package bucket discovers buckets under a configured root directory and
// extracts package versions from the manifest files inside them.
package bucket

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// manifestDir is the conventional subdirectory holding a bucket's manifests.
// Buckets without it keep their manifests at the bucket root.
const manifestDir = "bucket"

// Scanner enumerates buckets and scans their manifests.
type Scanner struct {
	root string
}

// NewScanner creates a Scanner over the given buckets root directory.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Root returns the buckets root directory.
func (s *Scanner) Root() string {
	return s.root
}

// BucketPath returns the directory backing the named bucket.
func (s *Scanner) BucketPath(name string) string {
	return filepath.Join(s.root, name)
}

// ListBuckets returns the names of all bucket subdirectories under the root.
// A missing root is reported as a warning and yields an empty list.
func (s *Scanner) ListBuckets() []string {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		log.Warn("buckets root not readable", "root", s.root, "err", err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// ScanBucket reads every manifest directly inside the bucket's manifest
// directory and returns the package versions found there. Files that fail to
// decode, or that carry no version, are skipped without aborting the scan.
func (s *Scanner) ScanBucket(name string) map[string]string {
	dir := filepath.Join(s.BucketPath(name), manifestDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = s.BucketPath(name)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug("bucket not readable", "bucket", name, "dir", dir, "err", err)
		return map[string]string{}
	}

	packages := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		pkg, ok := manifestName(entry.Name())
		if !ok {
			continue
		}
		version, ok := readManifestVersion(filepath.Join(dir, entry.Name()))
		if !ok {
			continue
		}
		packages[pkg] = version
	}
	return packages
}
