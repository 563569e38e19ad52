package main

import "github.com/dpshade/prompt-workbench/internal/cli"

var version = "0.1.0"

func main() {
	cli.Execute(version)
}
