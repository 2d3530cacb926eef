package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	md5 "github.com/stymphalian/iku_md5"
)

// stdinIsTerminal reports whether stdin is interactive.
func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// newRootCmd builds the md5sum command. Flag values live in the returned
// command, so every invocation starts from the defaults.
func newRootCmd() *cobra.Command {
	var decodingName string
	cmd := &cobra.Command{
		Use:   "md5sum",
		Short: "print the MD5 digest of standard input",
		Long: `
Read all of standard input as raw bytes and print its MD5 digest as 32
lowercase hex characters followed by a newline.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := md5.ParseDecoding(decodingName)
			if err != nil {
				return err
			}
			if cmd.InOrStdin() == os.Stdin && stdinIsTerminal() {
				fmt.Fprintln(cmd.ErrOrStderr(), "reading from terminal; end input with Ctrl-D")
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), d)
		},
	}
	addFlags(cmd.Flags(), &decodingName)
	return cmd
}

func addFlags(f *pflag.FlagSet, decodingName *string) {
	// Reproduces digests from the legacy tool, which hashed its input
	// after a lossy UTF-8 decode.
	f.StringVar(decodingName, "decoding", md5.Raw.String(), "input decoding: raw or legacy-text")
	if err := f.MarkHidden("decoding"); err != nil {
		panic(err)
	}
}

func run(in io.Reader, out io.Writer, d md5.Decoding) error {
	digest, err := md5.Md5WithDecoding(in, d)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, digest); err != nil {
		return errors.Wrap(err, "writing digest")
	}
	return nil
}

// Run executes the command with the given arguments.
func Run(args []string) error {
	cmd := newRootCmd()
	setArgs(cmd, args)
	return cmd.Execute()
}

// Main runs the command and returns the process exit status.
func Main(args []string) int {
	return mainWith(newRootCmd(), args)
}

// setArgs never hands cobra a nil slice, which it would replace with
// os.Args[1:].
func setArgs(cmd *cobra.Command, args []string) {
	cmd.SetArgs(append([]string{}, args...))
}

func mainWith(cmd *cobra.Command, args []string) int {
	setArgs(cmd, args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "md5sum: %v\n", err)
		return 1
	}
	return 0
}
