// Command paintbook renders the paintbook demos to PNG files.
//
//	paintbook list
//	paintbook run                   # every demo into ./example_output
//	paintbook run basics curves     # selected demos
//	paintbook run --size 600 --seed 7 --out /tmp/pics
//
// The output directory must exist. The first failure aborts the run and
// exits with status 1.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "paintbook:", err)
		os.Exit(1)
	}
}
