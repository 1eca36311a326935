// Command marcador-menu is a terminal replacement for rofi's dmenu mode. It
// reads candidates from standard input, lets the user pick one on the
// controlling terminal and prints the answer the way rofi would.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/marcador/internal/config"
	"github.com/atomicstack/marcador/internal/dmenu"
	"github.com/atomicstack/marcador/internal/logging"
	"github.com/atomicstack/marcador/internal/logging/events"
	"github.com/atomicstack/marcador/internal/ui"
	"golang.org/x/term"
)

const exitUsage = 2

var (
	openTTY     = openControllingTTY
	runSelector = ui.Run
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logCfg, err := config.SelectorLogging(os.Environ())
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitUsage
	}
	logging.Configure(logCfg.FilePath)
	logging.SetTraceEnabled(logCfg.Trace)

	opts, err := dmenu.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "marcador-menu: %v\n", err)
		return exitUsage
	}
	var elements []string
	if !opts.MessageOnly {
		if elements, err = readElements(stdin); err != nil {
			return fail(stderr, err)
		}
	}
	events.Selector.Start(args, len(elements))

	tty, err := openTTY()
	if err != nil {
		return fail(stderr, err)
	}
	defer tty.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	res, err := runSelector(ctx, opts, elements, tty, tty)
	if err != nil {
		return fail(stderr, err)
	}
	out, code := dmenu.Render(opts, elements, res)
	if _, err := io.WriteString(stdout, out); err != nil {
		return fail(stderr, err)
	}
	events.Selector.Finish(code, out)
	return code
}

func fail(stderr io.Writer, err error) int {
	logging.Error(err)
	fmt.Fprintf(stderr, "marcador-menu: %v\n", err)
	return dmenu.ExitCancel
}

// readElements returns one candidate per input line.
func readElements(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var elements []string
	for scanner.Scan() {
		elements = append(elements, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	return elements, nil
}

var errNoTerminal = errors.New("/dev/tty is not a terminal")

// openControllingTTY opens the terminal directly, since standard input
// carries the candidates and standard output the answer.
func openControllingTTY() (io.ReadWriteCloser, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if !term.IsTerminal(int(tty.Fd())) {
		tty.Close()
		return nil, errNoTerminal
	}
	return tty, nil
}
