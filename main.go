// Package main is the entry point for the chapsplit application.
package main

import (
	"github.com/chapsplit-cli/chapsplit/cmd"
	"github.com/chapsplit-cli/chapsplit/config"
	"github.com/chapsplit-cli/chapsplit/internal/cache"
	"github.com/chapsplit-cli/chapsplit/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Expired metadata cache entries are swept in the background.
	cache.CollectGarbage()

	cmd.Execute()
}
