// Package dispatcher prints the simulation menu, reads one selection and runs the matching simulation.
package dispatcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aristath/quantumlab/internal/modules/lab"
	"github.com/rs/zerolog"
)

// InvalidChoice is printed for any selection outside the menu.
const InvalidChoice = "Invalid choice."

// Prompt is printed after the menu, without a trailing newline.
const Prompt = "Enter 1, 2, or 3: "

// Runner runs one simulation.
type Runner interface {
	Run(ctx context.Context, kind lab.Kind) error
}

// Entry maps a menu token to a simulation.
type Entry struct {
	Token string
	Label string
	Kind  lab.Kind
}

// Menu is the fixed selection table.
var Menu = []Entry{
	{Token: "1", Label: "Double Slit", Kind: lab.KindDoubleSlit},
	{Token: "2", Label: "Particle in a Box", Kind: lab.KindParticleInBox},
	{Token: "3", Label: "Bloch Sphere", Kind: lab.KindBlochSphere},
}

// Lookup returns the entry whose token equals choice exactly.
func Lookup(choice string) (Entry, bool) {
	for _, e := range Menu {
		if e.Token == choice {
			return e, true
		}
	}
	return Entry{}, false
}

// Dispatcher handles a single menu interaction
type Dispatcher struct {
	in     *bufio.Reader
	out    io.Writer
	runner Runner
	log    zerolog.Logger
}

// New creates a new dispatcher
func New(in io.Reader, out io.Writer, runner Runner, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		in:     bufio.NewReader(in),
		out:    out,
		runner: runner,
		log:    log.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch prints the menu, reads one line and runs the selected simulation once.
// Unrecognised input prints InvalidChoice and returns nil.
func (d *Dispatcher) Dispatch(ctx context.Context) error {
	fmt.Fprintln(d.out, "Select Simulation:")
	for _, e := range Menu {
		fmt.Fprintf(d.out, "%s. %s\n", e.Token, e.Label)
	}
	fmt.Fprint(d.out, Prompt)

	choice, err := d.readLine()
	if err != nil {
		return fmt.Errorf("failed to read selection: %w", err)
	}

	entry, ok := Lookup(choice)
	if !ok {
		d.log.Debug().Str("choice", choice).Msg("Unrecognised selection")
		fmt.Fprintln(d.out, InvalidChoice)
		return nil
	}

	d.log.Debug().Str("choice", choice).Stringer("simulation", entry.Kind).Msg("Dispatching")
	return d.runner.Run(ctx, entry.Kind)
}

// readLine returns the next line without its terminator. EOF counts as an empty line.
func (d *Dispatcher) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
