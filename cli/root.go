package cli

import (
	"io"

	"github.com/spf13/cobra"
)

type options struct {
	loglevel string
	config   string
	level    int
	version  int
	format   string
	baseDir  string
}

// exactArgs is cobra.ExactArgs reporting a usage error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return Usagef("%v\nUsage: %s", err, cmd.UseLine())
		}
		return nil
	}
}

// NewRoot returns the sedml command. Program output goes to stdout;
// logging goes to stderr.
func NewRoot(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	v := NewConfig()

	root := &cobra.Command{
		Use:           "sedml",
		Short:         "Create, inspect and convert SED-ML documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return Usagef("unknown command %q for %s", args[0], cmd.CommandPath())
			}
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return Usagef("%v\nUsage: %s", err, cmd.UseLine())
	})
	root.PersistentFlags().StringVar(&opts.loglevel, "loglevel", DefaultLogLevel, "Console log level")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "YAML configuration file")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := LoadConfig(v, cmd.Root(), opts.config); err != nil {
			return err
		}
		if err := SetupLogging(opts.loglevel, stderr); err != nil {
			return Usagef("%v", err)
		}
		return nil
	}

	levelFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&opts.level, "level", 0, "SED-ML level to write (default: unchanged)")
		cmd.Flags().IntVar(&opts.version, "version", 0, "SED-ML version to write (default: unchanged)")
	}

	createCmd := &cobra.Command{
		Use:   "create FILE",
		Short: "Write the example SED-ML document",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Create(cmd.OutOrStdout(), args[0], opts.level, opts.version)
		},
	}
	levelFlags(createCmd)

	printCmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print a summary of a SED-ML document",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Print(cmd.OutOrStdout(), args[0])
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a SED-ML document for schema and reference problems",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Validate(cmd.OutOrStdout(), args[0], opts.format)
		},
	}
	validateCmd.Flags().StringVar(&opts.format, "format", FormatText, "Output format, text or json")

	echoCmd := &cobra.Command{
		Use:   "echo IN OUT",
		Short: "Read a SED-ML document and write it again",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Echo(cmd.OutOrStdout(), args[0], args[1], opts.level, opts.version)
		},
	}
	levelFlags(echoCmd)

	resolveCmd := &cobra.Command{
		Use:   "resolve FILE MODEL_ID",
		Short: "Print the model XML with the model's changes applied",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Resolve(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts.baseDir)
		},
	}
	resolveCmd.Flags().StringVar(&opts.baseDir, "basedir", "", "Directory model sources are relative to (default: the document's directory)")

	formulaCmd := &cobra.Command{
		Use:   "formula EXPR",
		Short: "Parse a formula and print it in canonical form and as MathML",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Formula(cmd.OutOrStdout(), args[0])
		},
	}

	root.AddCommand(createCmd, printCmd, validateCmd, echoCmd, resolveCmd, formulaCmd)
	return root
}
