// Command sedml creates, prints, validates, converts and resolves SED-ML
// documents. Run "sedml help" for the list of commands.
package main

import (
	"context"
	"io"
	"os"

	"github.com/andaru/sedml/cli"
)

func main() {
	os.Exit(cli.Exit(os.Stderr, run(context.Background(), os.Stdout, os.Stderr, os.Args[1:])))
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	root := cli.NewRoot(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
