package main

import (
	"github.com/goliatone/go-viewkit/internal/command"
)

func main() {
	command.Main(
		"viewkit",
		"Render and serve the viewkit components",
		command.Serve(),
		command.Render(),
		command.List(),
	)
}
