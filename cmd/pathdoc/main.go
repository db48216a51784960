// Command pathdoc reads, edits and stores JSON documents through
// slash-delimited paths.
//
//	pathdoc get config.json server/port
//	pathdoc set @settings theme/dark true
//	pathdoc fmt --output yaml config.json
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		msg := err.Error()
		if !strings.HasPrefix(msg, "pathdoc:") {
			msg = "pathdoc: " + msg
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
