package tarsnap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/semmidev/arkeep/internal/domain"
	"github.com/semmidev/arkeep/internal/listing"
)

// runner executes one tarsnap invocation and returns its stdout.
type runner func(ctx context.Context, name string, args []string, env []string) ([]byte, error)

// Client wraps the tarsnap binary as an archive store. It never creates
// archives; it only lists and deletes them.
type Client struct {
	binary  string
	keyfile string
	run     runner
}

func New(binary, keyfile string) *Client {
	if binary == "" {
		binary = "tarsnap"
	}
	return &Client{
		binary:  binary,
		keyfile: keyfile,
		run:     runCommand,
	}
}

func runCommand(ctx context.Context, name string, args []string, env []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	return cmd.Output()
}

func (c *Client) baseArgs() []string {
	if c.keyfile != "" {
		return []string{"--keyfile", c.keyfile}
	}
	return nil
}

// List runs "tarsnap --list-archives -v" with TZ=UTC in the child
// environment so the listed timestamps match the UTC bucket derivation.
func (c *Client) List(ctx context.Context) ([]domain.Archive, error) {
	args := append(c.baseArgs(), "--list-archives", "-v")
	env := append(os.Environ(), "TZ=UTC")

	out, err := c.run(ctx, c.binary, args, env)
	if err != nil {
		return nil, commandError(c.binary, args, err)
	}

	return listing.Parse(string(out))
}

// Delete removes all named archives in a single tarsnap invocation.
func (c *Client) Delete(ctx context.Context, names []string) error {
	args := append(c.baseArgs(), "-d")
	for _, name := range names {
		args = append(args, "-f", name)
	}

	if _, err := c.run(ctx, c.binary, args, os.Environ()); err != nil {
		return commandError(c.binary, args, err)
	}
	return nil
}

func commandError(binary string, args []string, err error) error {
	command := binary + " " + strings.Join(args, " ")
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("command %q failed with exit status %d", command, exitErr.ExitCode())
	}
	return fmt.Errorf("command %q failed: %w", command, err)
}
