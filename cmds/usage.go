package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
	if p.fallback != nil {
		line := "<" + strings.Join(p.fallback.argNames(), " ") + ">"
		if p.fallback.Description != "" {
			line += "\t" + p.fallback.Description
		}
		fmt.Fprintln(w, line)
	}
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// group names by command so aliases share a line
	names := make(map[*Command][]string)
	var order []*Command
	for name, command := range commands {
		if command == nil {
			continue
		}
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}
	for _, command := range order {
		slices.SortFunc(names[command], func(a, b string) int {
			if c := len(a) - len(b); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, command := range order {
		line := indent + strings.Join(names[command], ", ")
		for _, arg := range command.argNames() {
			line += " <" + arg + ">"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
