// Command print_sedml reads the SED-ML document named on the command line
// and prints a summary of it. Documents with errors print their error log
// and exit with status 2.
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
		fmt.Fprint(out, "\nUsage: print_sedml input-filename\n\n")
		return &cli.ExitError{Code: cli.ExitUsage}
	}
	if err := cli.SetupLogging(cli.NewConfig().GetString("loglevel"), nil); err != nil {
		return err
	}
	return cli.Print(out, args[0])
}
