// tinctheme - derive palettes and resolved styles from seed colours
//
// tinctheme builds tonal palettes from seed colours and resolves layered
// theme definitions into concrete style properties.
package main

import (
	"os"

	"github.com/jmylchreest/tinctheme/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
