package main

import (
	"github.com/consensys/karamul/pkg/cmd"
)

func main() {
	cmd.Execute()
}
