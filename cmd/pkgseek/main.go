// Command pkgseek searches package manifests across bucket directories,
// maintaining an incremental index so unchanged buckets are never rescanned.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Results go to stdout; everything else goes to stderr.
	log.SetOutput(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Failures degrade to a message rather than a shell-visible error code.
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error("pkgseek failed", "err", err)
	}
}
