package main

import (
	"task-tracker/internal/cli"
)

func main() {
	cli.Run()
}
