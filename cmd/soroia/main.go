// Command soroia runs the assistant from a terminal and indexes the text corpus.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Stdout.WriteString(err.Error() + "\n")
			return
		}
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
