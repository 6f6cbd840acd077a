package argv

import (
	"fmt"
	"io"
	"sort"
	"strings"

	argvio "github.com/davrn/go-argv/io"
)

// Help rendering is a read-only consumer of the flag registry and the
// positional-argument queue. Styling degrades to plain text off-terminal.

// PrintHelp renders the usage line and flag table for this scope.
func (a *Args) PrintHelp(program string, w io.Writer) {
	a.printHelp(program, w, "")
}

func (a *Args) printHelp(program string, w io.Writer, summary string) {
	st := argvio.NewStyler(w, argvio.ColorAuto)

	fmt.Fprintf(w, "%s %s %s", st.Bold("Usage:"), program, st.Italic("FLAGS..."))
	for _, exp := range a.expected {
		fmt.Fprintf(w, " %s", st.Italic(strings.ToUpper(exp.Label)))
		if exp.Arity == 0 {
			fmt.Fprint(w, "...")
		}
		if exp.Optional {
			fmt.Fprint(w, "?")
		}
	}
	fmt.Fprintln(w)

	if summary != "" {
		fmt.Fprintf(w, "\n%s %s.\n", st.Bold("Summary:"), summary)
	}

	if len(a.long) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.Bold("Flags:"))
		a.printFlags(w, st)
	}
}

func (a *Args) printFlags(w io.Writer, st *argvio.Styler) {
	names := make([]string, 0, len(a.long))
	for name := range a.long {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows [][2]string
	for _, name := range names {
		f := a.long[name]
		if a.hidden(f.Category) {
			continue
		}
		left := "    "
		if f.Short != 0 {
			left = "-" + string(f.Short) + ", "
		}
		left += "--" + name + renderLabels(st, f.Labels)
		rows = append(rows, [2]string{left, f.Description})
	}
	printTable(w, rows)
}

func renderLabels(st *argvio.Styler, labels []string) string {
	var b strings.Builder
	for _, label := range labels {
		b.WriteString(" ")
		b.WriteString(st.Italic(strings.ToUpper(label)))
	}
	return b.String()
}

// printTable aligns the right column on the visible width of the left one.
func printTable(w io.Writer, rows [][2]string) {
	widest := 0
	for _, row := range rows {
		if n := argvio.VisibleWidth(row[0]); n > widest {
			widest = n
		}
	}
	for _, row := range rows {
		pad := strings.Repeat(" ", widest-argvio.VisibleWidth(row[0])+2)
		fmt.Fprintf(w, "  %s%s%s\n", row[0], pad, row[1])
	}
}

// PrintHelp renders the command's usage, summary and worked examples.
func (c *Command) PrintHelp(program string, w io.Writer) {
	c.printHelp(program, w, c.Summary)

	if len(c.Examples) == 0 {
		return
	}
	st := argvio.NewStyler(w, argvio.ColorAuto)
	fmt.Fprintf(w, "\n%s\n", st.Bold("Examples:"))
	for _, ex := range c.Examples {
		fmt.Fprintf(w, "\n  %s\n  $ %s\n", ex.Description, ex.Command)
	}
}

// PrintHelp renders the multi-command's common flags and the command table
// grouped by category. Once a sub-command is selected, help belongs to it.
func (m *MultiCommand) PrintHelp(program string, w io.Writer) {
	if m.selected != nil {
		m.selected.Command.PrintHelp(program+" "+m.selected.Name, w)
		return
	}

	st := argvio.NewStyler(w, argvio.ColorAuto)
	fmt.Fprintf(w, "%s %s %s\n", st.Bold("Usage:"), program,
		st.Italic("COMMAND FLAGS... ARGS..."))

	if len(m.long) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.Bold("Common flags:"))
		m.printFlags(w, st)
	}

	byCategory := make(map[Category]map[string]*Command)
	for name, factory := range m.commands {
		info := factory().Info()
		if byCategory[info.Category] == nil {
			byCategory[info.Category] = make(map[string]*Command)
		}
		byCategory[info.Category][name] = info
	}

	categories := make([]Category, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, category := range categories {
		title := m.categoryTitles[category]
		if title == "" {
			title = "Other commands"
		}
		fmt.Fprintf(w, "\n%s\n", st.Bold(title+":"))

		names := make([]string, 0, len(byCategory[category]))
		for name := range byCategory[category] {
			names = append(names, name)
		}
		sort.Strings(names)

		var rows [][2]string
		for _, name := range names {
			if summary := byCategory[category][name].Summary; summary != "" {
				rows = append(rows, [2]string{name, summary})
			}
		}
		printTable(w, rows)
	}
}
