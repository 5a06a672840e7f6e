package check

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"bindgen-core/internal/config"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/kb"
)

// waitDelay bounds how long a killed compiler may keep its output open.
const waitDelay = 2 * time.Second

// Checker compiles a snippet in an environment. A nil message means the
// snippet compiled; a non-nil message is the compiler's complaint. The
// error result is reserved for failures to run the check at all.
type Checker interface {
	Check(ctx context.Context, s Snippet, env kb.CheckerEnv) (*string, error)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context, s Snippet, env kb.CheckerEnv) (*string, error)

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context, s Snippet, env kb.CheckerEnv) (*string, error) {
	return f(ctx, s, env)
}

// CommandChecker runs a compiler on a temporary source file. It always
// compiles for the host; env only labels the result.
type CommandChecker struct {
	Args           []string
	IncludePaths   []string
	FrameworkPaths []string
	Timeout        time.Duration
	// TempDir holds the snippet files; empty means os.TempDir.
	TempDir string
}

// NewCommandChecker builds a checker from the checker and build sections
// of cfg.
func NewCommandChecker(cfg *config.Config) (*CommandChecker, error) {
	args, err := cfg.CheckerArgs()
	if err != nil {
		return nil, err
	}

	return &CommandChecker{
		Args:           args,
		IncludePaths:   cfg.Build.IncludePaths,
		FrameworkPaths: cfg.Build.FrameworkPaths,
		Timeout:        cfg.CheckerTimeout(),
	}, nil
}

// Check implements Checker.
func (c *CommandChecker) Check(ctx context.Context, s Snippet, _ kb.CheckerEnv) (*string, error) {
	if len(c.Args) == 0 {
		return nil, errors.New("checker command is empty")
	}

	f, err := os.CreateTemp(c.TempDir, checkName+"_*.cpp")
	if err != nil {
		return nil, errors.Wrap(err, "create snippet file")
	}

	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(s.Source()); err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "write %s", path)
	}

	if err := f.Close(); err != nil {
		return nil, errors.Wrapf(err, "close %s", path)
	}

	runCtx := ctx

	if c.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, c.Args[0], c.commandArgs(path)...)
	cmd.WaitDelay = waitDelay

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err = cmd.Run()
	if err == nil {
		return nil, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if runCtx.Err() != nil {
		msg := "check timed out after " + c.Timeout.String()
		return &msg, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, errors.Wrapf(err, "run %s", c.Args[0])
	}

	msg := strings.TrimSpace(output.String())
	if msg == "" {
		msg = exitErr.Error()
	}

	return &msg, nil
}

func (c *CommandChecker) commandArgs(path string) []string {
	args := append([]string{}, c.Args[1:]...)

	for _, dir := range c.IncludePaths {
		args = append(args, "-I"+dir)
	}

	for _, dir := range c.FrameworkPaths {
		args = append(args, "-F"+dir)
	}

	return append(args, path)
}
