// Command newtongen renders Newton-fractal PNGs from a command-line
// description of a complex function, viewport, and optional color
// palette (spec.md §6).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/cmd"
	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: newtongen <command> [args]")
		os.Exit(2)
	}

	s, err := cmds.Lookup(strings.Join(args, " "))
	switch {
	case err == cmd.ErrNotFound:
		fmt.Fprintf(os.Stderr, "newtongen: unknown command %q\n", args[0])
		os.Exit(2)
	case err == cmd.ErrAmbiguous:
		fmt.Fprintf(os.Stderr, "newtongen: ambiguous command %q\n", args[0])
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "newtongen: %v\n", err)
		os.Exit(2)
	}

	handler := s.Command.Data.(func(cmd.Selection) error)
	if err := handler(s); err != nil {
		fmt.Fprintf(os.Stderr, "newtongen: %v\n", err)
		os.Exit(1)
	}
}

func cmdHelp(s cmd.Selection) error {
	target := cmds
	name := strings.Join(s.Args, " ")
	if name != "" {
		sel, err := cmds.Lookup(name)
		if err != nil {
			return err
		}
		if sel.Command.Subtree != nil {
			target = sel.Command.Subtree
		} else {
			fmt.Printf("%s\n  %s\n", sel.Command.Usage, sel.Command.Description)
			return nil
		}
	}
	fmt.Printf("%s commands:\n", target.Title)
	for _, c := range target.Commands {
		if c.Brief != "" {
			fmt.Printf("  %-12s %s\n", c.Name, c.Brief)
		}
	}
	return nil
}

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: newtongen render -height <n> -output <path> -function <expr> [options]")
	}
}
