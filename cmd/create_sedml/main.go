// Command create_sedml writes an example SED-ML document to the file
// named on the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/andaru/sedml/cli"
)

func main() {
	os.Exit(cli.Exit(os.Stderr, run(os.Stdout, os.Args[1:])))
}

func run(out io.Writer, args []string) error {
	if len(args) != 1 {
		fmt.Fprint(out, "\nUsage: create_sedml output-filename\n\n")
		return &cli.ExitError{Code: cli.ExitUsage}
	}
	if err := cli.SetupLogging(cli.NewConfig().GetString("loglevel"), nil); err != nil {
		return err
	}
	return cli.Create(out, args[0], 0, 0)
}
