package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/thruflo/chores/internal/chore"
	"github.com/thruflo/chores/internal/scheduler"
)

// Printer writes run output to a writer. It satisfies scheduler.Observer.
type Printer struct {
	w      io.Writer
	styles styles
}

var _ scheduler.Observer = (*Printer)(nil)

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: newStyles(w)}
}

// Executing announces an agent starting a task.
func (p *Printer) Executing(agent, task string) {
	fmt.Fprintf(p.w, "%s is executing task: %s\n", p.styles.agent.Render(agent), task)
}

// TimeAdvisory reports whether the budget covers the estimated work.
// It is informational only.
func (p *Printer) TimeAdvisory(estimate, budget int) {
	msg := fmt.Sprintf("Estimated time for all tasks: %d minutes. Available: %d minutes.", estimate, budget)
	if estimate <= budget {
		fmt.Fprintln(p.w, p.styles.success.Render(msg+" There is enough time to finish every task."))
		return
	}
	fmt.Fprintln(p.w, p.styles.warning.Render(msg+" There is not enough time to finish every task."))
}

// Banner prints the program heading.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.styles.title.Render("Household chore manager with rules and multiple agents"))
}

// Summary prints the outcome of a run.
func (p *Printer) Summary(res scheduler.Result) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.title.Render("Summary"))
	printField(p.w, "Result", res.Reason.String())
	printField(p.w, "Passes", fmt.Sprintf("%d", res.Passes))
	printField(p.w, "Completed", joinOrNone(res.Completed))
	printField(p.w, "Pending", joinOrNone(res.Pending))
	if res.Budgeted() {
		printField(p.w, "Time left", fmt.Sprintf("%d of %d minutes", res.Remaining, res.Budget))
	}
	printField(p.w, "State", res.State.String())
}

// Tasks prints tasks in the order given, normally dispatch order.
func (p *Printer) Tasks(tasks []*chore.Task) {
	nameWidth := len("TASK")
	for _, t := range tasks {
		if len(t.Name) > nameWidth {
			nameWidth = len(t.Name)
		}
	}

	header := fmt.Sprintf("%-*s  %-8s  %-4s  %s", nameWidth, "TASK", "PRIORITY", "COST", "WHEN")
	fmt.Fprintln(p.w, p.styles.subtle.Render(header))
	for _, t := range tasks {
		fmt.Fprintf(p.w, "%-*s  %-8d  %-4d  %s\n", nameWidth, t.Name, t.Priority, t.Cost, t.Precondition)
	}
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-10s %s\n", label+":", value)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
