package main

import (
	"github.com/EpicenterPrograms/codonoptimizer/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
