package main

import (
	"log"

	"github.com/ankestat/ankestat/internal/cli"
)

func main() {
	log.SetFlags(0)
	cli.Execute()
}
