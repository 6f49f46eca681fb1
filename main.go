package main

import (
	"github.com/alecthomas/kong"

	"github.com/DominusMortem/foodgram-project-react/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Foodgram"), kong.Description("Foodgram is a recipe sharing and shopping list service."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
