package main

import (
	"os"

	"github.com/todolite/backend/cli"
)

func main() {
	cli.Execute(os.Args[1:])
}
