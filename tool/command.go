package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// DefaultCommandTimeout bounds the wall-clock time a single command may run.
const DefaultCommandTimeout = 120 * time.Second

// pipeAbandonDelay bounds how long Wait may keep reading output pipes after
// the command has been killed. Orphaned children inheriting the pipes would
// otherwise keep the call blocked past the deadline.
const pipeAbandonDelay = 2 * time.Second

// BashOptions configures the builtin command-execution tool.
type BashOptions struct {
	// Timeout is the wall-clock ceiling per command. Zero means DefaultCommandTimeout.
	Timeout time.Duration
	// WorkDir is the command working directory. Empty means the process working directory.
	WorkDir string
}

// NewBashTool returns the builtin "bash" tool. Commands run under a fixed
// wall-clock ceiling; exceeding it yields a distinguishable timeout error
// rather than a partial result. A command that produces no output on either
// stream reports the literal "(no output)". A nonzero exit code is not an
// error: whatever the command printed is the result.
//
// The command runs in its own process group and the whole group is killed on
// timeout, so backgrounded children cannot hold the output pipes open and
// block the calling turn.
func NewBashTool(optFns ...func(o *BashOptions)) *FunctionTool {
	opts := BashOptions{Timeout: DefaultCommandTimeout}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCommandTimeout
	}

	return NewFunctionTool(
		"bash",
		"Run a bash command and return the output",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"command": map[string]any{"type": "string", "description": "The bash command to run"},
			},
			"required": []string{"command"},
		},
		func(ctx context.Context, args map[string]any) (string, error) {
			command, _ := StringArg(args, "command")

			runCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
			defer cancel()

			cmd := exec.CommandContext(runCtx, "bash", "-c", command)
			if opts.WorkDir != "" {
				cmd.Dir = opts.WorkDir
			}
			cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
			cmd.Cancel = func() error {
				return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
			}
			cmd.WaitDelay = pipeAbandonDelay

			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
				return "", fmt.Errorf("command timed out after %v", opts.Timeout)
			}
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					return "", fmt.Errorf("running command: %w", err)
				}
				// Nonzero exit: fall through and return the captured output.
			}

			output := stdout.String() + stderr.String()
			if output == "" {
				return "(no output)", nil
			}
			return output, nil
		},
	)
}
