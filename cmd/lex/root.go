package main

import (
	"fmt"
	"io"
	"log"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/lex"
	"github.com/tsatke/lex/rules"
	"github.com/tsatke/lex/token"
)

type options struct {
	limit          int
	endMarker      int32
	skipWhitespace bool
	positions      bool
	verbose        bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     AppName + " [file]",
		Short:   "Print the tokens of a file",
		Long:    "Print the tokens of a file, one per line. If no file or - is given, stdin is read.",
		Version: Version,
		Args:    cobra.MaximumNArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, AppName+": ", 0)
			if opts.verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}

			marker := rune(opts.endMarker)
			if !utf8.ValidRune(marker) {
				return fmt.Errorf("invalid end marker %d: not a valid code point", opts.endMarker)
			}

			name := "-"
			if len(args) > 0 {
				name = args[0]
			}
			source, err := readSource(fs, cmd.InOrStdin(), name)
			if err != nil {
				return err
			}
			logger.Printf("read %d bytes from %s", len(source), name)

			set := rules.Standard()
			if opts.skipWhitespace {
				set = rules.Compact()
			}
			tokens := rules.New(set,
				lex.WithText(source),
				lex.WithEndMarker(marker),
			).Tokens().Until(rules.UntilEnd(source, marker))
			if opts.limit > 0 {
				tokens.Limit(opts.limit)
			}

			out := cmd.OutOrStdout()
			for tok, ok := tokens.Next(); ok; tok, ok = tokens.Next() {
				line := tok.String()
				if opts.positions {
					pos := token.Locate(source, tok.Offset)
					line = fmt.Sprintf("%d:%d\t%s %q", pos.Line, pos.Col, tok.Type, tok.Value)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return fmt.Errorf("write token: %w", err)
				}
			}
			logger.Printf("produced %d tokens", tokens.Count())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.limit, "limit", "n", 0, "print at most this many tokens (0 means no limit)")
	flags.Int32Var(&opts.endMarker, "end-marker", int32(lex.DefaultEndMarker), "code point that marks the end of input")
	flags.BoolVar(&opts.skipWhitespace, "skip-whitespace", false, "skip blanks instead of printing whitespace tokens")
	flags.BoolVar(&opts.positions, "positions", false, "print line and column instead of the offset")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

func readSource(fs afero.Fs, stdin io.Reader, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
