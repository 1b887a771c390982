package main

import (
	"github.com/Rutvikrj26/cpd-events-cli/cmd/cpd/cmd"
)

func main() {
	cmd.Execute()
}
