package rofi

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.uber.org/atomic"
)

// Launcher starts the selection program. The input is written to the
// program's standard input, which is closed before Launch returns.
type Launcher interface {
	Launch(program string, args []string, input []byte) (Process, error)
}

// Process is a running selection program.
type Process interface {
	// Wait blocks until the program exits and returns its exit code. A code
	// of -1 means the program did not exit on its own (for example it was
	// killed by a signal).
	Wait() (int, error)
	// Output returns the captured standard output. It is only complete once
	// Wait has returned.
	Output() io.Reader
	// Kill terminates the program.
	Kill() error
}

// ExecLauncher runs programs with os/exec.
type ExecLauncher struct{}

// Launch implements Launcher.
func (ExecLauncher) Launch(program string, args []string, input []byte) (Process, error) {
	cmd := exec.Command(program, args...)
	p := &execProcess{cmd: cmd}
	cmd.Stdout = &p.stdout
	cmd.Stderr = &p.stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, ioError("open stdin", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, ioError("start "+program, err)
	}
	if _, err := stdin.Write(input); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, ioError("write elements", err)
	}
	if err := stdin.Close(); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, ioError("close stdin", err)
	}
	return p, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return p.cmd.ProcessState.ExitCode(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}

func (p *execProcess) Output() io.Reader {
	return &p.stdout
}

func (p *execProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	err := p.cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// Child is a spawned selection program together with the element count
// needed to validate an index answer. A Child is consumed by one call to
// Wait or WaitIndex. Kill may be called from another goroutine while the
// owner is blocked in Wait.
type Child struct {
	proc     Process
	elements int
	killed   atomic.Bool
	consumed atomic.Bool
}

func newChild(proc Process, elements int) *Child {
	return &Child{proc: proc, elements: elements}
}

// Elements returns the number of elements written to the program.
func (c *Child) Elements() int {
	return c.elements
}

// Kill terminates the program. A Wait that is pending or follows resolves
// as ErrInterrupted.
func (c *Child) Kill() error {
	c.killed.Store(true)
	if err := c.proc.Kill(); err != nil {
		return ioError("kill", err)
	}
	return nil
}

// Wait blocks until the program exits and decodes the answer as text.
func (c *Child) Wait() (int, string, error) {
	code, err := c.wait()
	if err != nil {
		return code, "", err
	}
	return decodeText(code, c.proc.Output())
}

// WaitIndex blocks until the program exits and decodes the answer as an
// index into the element list. NoIndex is returned when the payload is
// outside the list.
func (c *Child) WaitIndex() (int, int, error) {
	code, err := c.wait()
	if err != nil {
		return code, NoIndex, err
	}
	return decodeIndex(code, c.proc.Output(), c.elements)
}

func (c *Child) wait() (int, error) {
	if c.consumed.Swap(true) {
		return 0, ioError("wait", errChildConsumed)
	}
	code, err := c.proc.Wait()
	if err != nil {
		return code, ioError("wait", err)
	}
	if c.killed.Load() {
		return code, interrupted(code, "killed")
	}
	return code, nil
}

var errChildConsumed = errors.New("child already waited")
