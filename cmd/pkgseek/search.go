package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/pkgseek/pkgseek/internal/bucket"
	"github.com/pkgseek/pkgseek/internal/config"
	"github.com/pkgseek/pkgseek/internal/index"
	"github.com/pkgseek/pkgseek/internal/reconcile"
	"github.com/pkgseek/pkgseek/internal/refresh"
	"github.com/pkgseek/pkgseek/internal/searcher"
	"github.com/pkgseek/pkgseek/internal/vcs"
)

// runSearch is the top-level flow: load, flatten, search; on an empty result,
// refresh the buckets, reconcile, and search once more.
func runSearch(ctx context.Context, out io.Writer, query string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := index.NewStore(cfg.IndexPath)
	if err := store.EnsureExists(); err != nil {
		log.Warn("could not create index file", "path", store.Path(), "err", err)
	}
	idx := store.Load()

	s := searcher.New(searcher.Flatten(idx))
	results := s.Search(query)

	if len(results) == 0 {
		refresh.NewCommand(cfg.RefreshCommand).Refresh(ctx)

		scanner := bucket.NewScanner(cfg.BucketsRoot)
		updated, stats := reconcile.New(scanner, vcs.Git{}).Reconcile(ctx, idx)
		log.Debug("reconciled index",
			"added", stats.Added, "removed", stats.Removed, "updated", stats.Updated)

		// Fingerprints may have moved even when the package stats are zero.
		if err := store.Save(updated); err != nil {
			log.Warn("could not persist index, results are in-memory only", "err", err)
		}

		s = searcher.New(searcher.Flatten(updated))
		results = s.Search(query)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No results found for %q.\n", query)
		return nil
	}

	fmt.Fprintln(out, renderTable(results))
	return nil
}
