package main

import (
	"os"

	"lrucache/internal/bench"
)

func main() {
	if err := bench.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
