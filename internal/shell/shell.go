package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/roach88/ptable/internal/aggregate"
	"github.com/roach88/ptable/internal/export"
	"github.com/roach88/ptable/internal/query"
	"github.com/roach88/ptable/internal/store"
)

// Title is printed above the menu.
const Title = "Chemical Element Database"

// ExitChoice ends the menu loop.
const ExitChoice = "9"

// Messages shown to the user.
const (
	MsgNotFound      = "Element not found."
	MsgNoneFound     = "No elements found."
	MsgInvalidChoice = "Invalid choice. Try again."
	MsgGoodbye       = "Thank you for using the element database."
)

// errEndOfInput signals that the input stream closed mid-prompt.
var errEndOfInput = errors.New("end of input")

// action is one numbered menu entry.
type action struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// Shell is the interactive menu loop.
type Shell struct {
	store      *store.Store
	records    []store.Record
	in         *bufio.Reader
	out        io.Writer
	logger     *slog.Logger
	outputPath func(export.Exporter) string
	actions    []action
}

// Option configures a Shell.
type Option func(*Shell)

// WithInput sets the stream choices and prompt answers are read from.
func WithInput(r io.Reader) Option {
	return func(s *Shell) { s.in = bufio.NewReader(r) }
}

// WithOutput sets the stream the menu and results are written to.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) { s.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithOutputPath sets how export file paths are resolved.
// The default is each exporter's DefaultFile in the working directory.
func WithOutputPath(fn func(export.Exporter) string) Option {
	return func(s *Shell) { s.outputPath = fn }
}

// New creates a Shell over st.
func New(st *store.Store, opts ...Option) *Shell {
	s := &Shell{
		store:      st,
		records:    st.Records(),
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		logger:     slog.Default(),
		outputPath: func(e export.Exporter) string { return e.DefaultFile() },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.actions = []action{
		{key: "1", label: "Show element properties", run: s.showElement},
		{key: "2", label: "Search elements by criterion", run: s.searchByCriterion},
		{key: "3", label: "List elements by group or period", run: s.filterGroupOrPeriod},
		{key: "4", label: "Calculate average atomic mass", run: s.averageMass},
	}
	for i, exp := range export.All() {
		s.actions = append(s.actions, action{
			key:   strconv.Itoa(5 + i),
			label: fmt.Sprintf("Generate %s file", exp.Title()),
			run:   s.exportAction(exp),
		})
	}
	return s
}

// Menu returns the menu text, without the trailing prompt.
func (s *Shell) Menu() string {
	var b strings.Builder
	b.WriteString("\n" + Title + "\n")
	for _, a := range s.actions {
		fmt.Fprintf(&b, "%s. %s\n", a.key, a.label)
	}
	fmt.Fprintf(&b, "%s. Exit\n", ExitChoice)
	return b.String()
}

// Run shows the menu and dispatches choices until the user exits, input
// ends, or ctx is cancelled. Action failures do not end the loop.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Debug("shell started", "source", s.store.Path(), "records", s.store.Len())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, s.Menu())
		choice, err := s.prompt("Choose an option: ")
		if errors.Is(err, errEndOfInput) {
			fmt.Fprintln(s.out)
			s.logger.Debug("input closed, leaving shell")
			return nil
		}
		if err != nil {
			return err
		}

		if choice == ExitChoice {
			fmt.Fprintln(s.out, MsgGoodbye)
			return nil
		}

		a, ok := s.find(choice)
		if !ok {
			fmt.Fprintln(s.out, MsgInvalidChoice)
			continue
		}

		s.logger.Debug("menu action", "choice", a.key, "action", a.label)
		if err := a.run(ctx); err != nil {
			if errors.Is(err, errEndOfInput) {
				fmt.Fprintln(s.out)
				return nil
			}
			s.logger.Debug("action failed", "action", a.label, "error", err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Shell) find(choice string) (action, bool) {
	for _, a := range s.actions {
		if a.key == choice {
			return a, true
		}
	}
	return action{}, false
}

// prompt writes label and reads one line without its line terminator.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) showElement(context.Context) error {
	q, err := s.prompt("Enter element name, symbol or atomic number: ")
	if err != nil {
		return err
	}
	s.printResults(query.Lookup(s.records, q), MsgNotFound)
	return nil
}

func (s *Shell) searchByCriterion(context.Context) error {
	criterion, err := s.prompt("Enter criterion (Element, Symbol, AtomicNumber): ")
	if err != nil {
		return err
	}
	value, err := s.prompt("Enter value: ")
	if err != nil {
		return err
	}
	s.printResults(query.Search(s.records, criterion, value), MsgNotFound)
	return nil
}

func (s *Shell) filterGroupOrPeriod(context.Context) error {
	key, err := s.prompt("Filter by group (Group) or period (Period): ")
	if err != nil {
		return err
	}
	value, err := s.prompt("Enter value: ")
	if err != nil {
		return err
	}
	s.printResults(query.Filter(s.records, key, value), MsgNoneFound)
	return nil
}

func (s *Shell) averageMass(context.Context) error {
	avg := aggregate.AverageMass(s.records)
	fmt.Fprintf(s.out, "Average relative atomic mass: %s\n", aggregate.FormatMass(avg))
	return nil
}

func (s *Shell) exportAction(exp export.Exporter) func(context.Context) error {
	return func(context.Context) error {
		path := s.outputPath(exp)
		if err := export.WriteFile(path, exp, s.records); err != nil {
			return err
		}
		s.logger.Debug("export written", "format", exp.Name(), "path", path, "records", len(s.records))
		fmt.Fprintf(s.out, "%s file generated as %s.\n", exp.Title(), path)
		return nil
	}
}

func (s *Shell) printResults(records []store.Record, notFound string) {
	if len(records) == 0 {
		fmt.Fprintln(s.out, notFound)
		return
	}
	for _, r := range records {
		WriteRecord(s.out, r)
	}
}

// WriteRecord prints one record as a properties block, one
// "Field: Value" line per field.
func WriteRecord(w io.Writer, r store.Record) {
	fmt.Fprintln(w, "\nElement properties:")
	for _, f := range r.Fields() {
		fmt.Fprintf(w, "%s: %s\n", f, r.Value(f))
	}
}
