/*
anima-tools runs the batch material tools of the anima editor from the
command line. See `anima-tools --help`.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/anima-tools/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
