// main is the entry point for the chlog CLI.
package main

import (
	"github.com/huangsam/chlog/cmd"
	"github.com/huangsam/chlog/internal/contract"
	"github.com/huangsam/chlog/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run chlog", err)
	}
}
