package main

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("newtongen")
	root.AddCommand(cmd.Command{
		Name:  "render",
		Brief: "Render a Newton-fractal PNG",
		Description: "Render the basins of attraction of Newton's method" +
			" applied to a user-supplied complex function, and write the" +
			" result as a PNG image.",
		Usage: "render -height <n> -output <path> -function <expr> [options]",
		Data:  cmdRender,
	})
	root.AddCommand(cmd.Command{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        cmdHelp,
	})
	root.AddShortcut("r", "render")
	root.AddShortcut("?", "help")

	cmds = root
}
