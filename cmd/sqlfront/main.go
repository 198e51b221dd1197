package main

import (
	"os"

	"sqlfront/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
