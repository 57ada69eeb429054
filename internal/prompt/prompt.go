// Package prompt collects run inputs from a person at a terminal: the initial
// world state, the time budget, and which agent takes each task.
//
// Prompts are line based. An invalid answer is reported and the question is
// asked again; only a read failure (including EOF) ends a prompt with an error.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/world"
)

// ErrNoInput is returned when input ends before a question is answered.
var ErrNoInput = errors.New("input ended before an answer was given")

// Questions asked for each built-in condition.
var questions = map[string]string{
	world.SinkFull:   "Is the sink full?",
	world.FloorDirty: "Is the floor dirty?",
	world.PlantsDry:  "Are the plants dry?",
}

// IsInteractive reports whether f is connected to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// YesNo asks a yes/no question until it gets an answer it understands.
func (p *Prompter) YesNo(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/n] ", question)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes", "s", "sim":
			return true, nil
		case "n", "no", "nao", "não":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer 'y' or 'n'.")
	}
}

// InitialState asks about every built-in condition missing from known and
// returns the completed state. Values already in known are kept.
func (p *Prompter) InitialState(known map[string]bool) (world.State, error) {
	st := make(world.State, len(world.Conditions()))
	for k, v := range known {
		st[k] = v
	}

	for _, c := range world.Conditions() {
		if _, ok := st[c]; ok {
			continue
		}
		v, err := p.YesNo(questions[c])
		if err != nil {
			return nil, err
		}
		st[c] = v
	}
	return st, nil
}

// TimeBudget asks for a positive number of minutes.
func (p *Prompter) TimeBudget() (int, error) {
	for {
		fmt.Fprint(p.out, "How many minutes are available for chores? ")
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}

		minutes, convErr := strconv.Atoi(answer)
		if convErr == nil && minutes > 0 {
			return minutes, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number of minutes greater than zero.")
	}
}

// AssignAgents asks which agent takes each task, in the order given, which
// is normally dispatch order. Tasks already assigned in known (task name to
// agent name) are bound without asking. One agent is created per task.
func (p *Prompter) AssignAgents(tasks []*chore.Task, names []string, known map[string]string) ([]*chore.Agent, error) {
	if len(names) == 0 {
		return nil, errors.New("no agent names to choose from")
	}

	agents := make([]*chore.Agent, 0, len(tasks))
	for _, task := range tasks {
		if name, ok := lookupAssignment(known, task.Name); ok {
			agents = append(agents, chore.NewAgent(name, task))
			continue
		}

		name, err := p.chooseAgent(task, names)
		if err != nil {
			return nil, err
		}
		agents = append(agents, chore.NewAgent(name, task))
	}
	return agents, nil
}

func (p *Prompter) chooseAgent(task *chore.Task, names []string) (string, error) {
	fmt.Fprintf(p.out, "\nAssigning an agent to priority %d task: %s\n", task.Priority, task.Name)
	for i, name := range names {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, name)
	}

	for {
		fmt.Fprint(p.out, "Choose the agent number: ")
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		choice, convErr := strconv.Atoi(answer)
		if convErr == nil && choice >= 1 && choice <= len(names) {
			return names[choice-1], nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(names))
	}
}

func lookupAssignment(known map[string]string, task string) (string, bool) {
	for k, v := range known {
		if strings.EqualFold(strings.TrimSpace(k), task) {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
