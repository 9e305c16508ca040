// Package refresh triggers the external command that synchronizes bucket
// contents before a reconciliation retry.
package refresh

import (
	"context"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner refreshes the backing bucket directories. Implementations must
// tolerate failure: the caller proceeds with whatever state exists.
type Runner interface {
	Refresh(ctx context.Context)
}

// Command runs a configured shell command to refresh buckets. Its output is
// not captured and its exit status is not inspected.
type Command struct {
	name string
	args []string
}

// NewCommand builds a Command from a whitespace-separated command line. An
// empty command line yields a runner that does nothing.
func NewCommand(commandLine string) *Command {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return &Command{}
	}
	return &Command{name: fields[0], args: fields[1:]}
}

// Refresh invokes the configured command, ignoring any error it produces.
func (c *Command) Refresh(ctx context.Context) {
	if c.name == "" {
		return
	}
	log.Debug("running refresh command", "command", c.name)
	if err := exec.CommandContext(ctx, c.name, c.args...).Run(); err != nil {
		log.Debug("refresh command failed, continuing", "command", c.name, "err", err)
	}
}

// Nop is a Runner that does nothing, for callers that disable refreshing.
type Nop struct{}

// Refresh implements Runner.
func (Nop) Refresh(context.Context) {}
