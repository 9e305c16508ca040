// Package vcs derives per-bucket fingerprints from version-control state.
package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Git fingerprints directories by their current git HEAD revision.
type Git struct{}

// Fingerprint returns the HEAD revision of the repository at path. The second
// return value is false when the path is not a git repository or the revision
// cannot be read; callers treat such directories as always stale.
func (Git) Fingerprint(ctx context.Context, path string) (string, bool) {
	// .git may be a directory or, for worktrees and submodules, a file.
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return "", false
	}

	out, err := exec.CommandContext(ctx, "git", "-C", path, "rev-parse", "HEAD").Output()
	if err != nil {
		log.Debug("git fingerprint unavailable", "path", path, "err", err)
		return "", false
	}

	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return "", false
	}
	return rev, true
}
