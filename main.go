package main

import (
	"github.com/tools4video/bealert/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Execute(version + " (commit " + commit + ", built " + date + ")")
}
