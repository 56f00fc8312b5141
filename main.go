package main

import (
	"github.com/uhrsim/uhrsim/cli"
)

func main() {
	cli.Launch()
}
