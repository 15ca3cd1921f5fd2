package main

import (
	"github.com/scholarly-tools/citeproc-go/cmd"
)

func main() {
	cmd.Execute()
}
