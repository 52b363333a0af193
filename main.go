package main

import (
	"os"

	"github.com/ffang0224/project-computer-networks/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
