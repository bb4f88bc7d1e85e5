package main

import (
	"github.com/distroforge/distroforge/pkg/cli"
	"github.com/distroforge/distroforge/pkg/console"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		console.Fatal("%s", err)
	}
}
