package cli

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"literal-generator/literal"
)

func (a *app) genCommand() *cobra.Command {
	var (
		typeName string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "gen [file]",
		Short: "Write a JSON document as a literal",
		Long: `Decode a JSON document into a known Go type and write it as a literal.

The document is read from the file argument, or from stdin when it is
omitted or "-". Dynamic shapes (object, array, map) keep JSON numbers as
System.Double.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}

			hint, err := a.types.Lookup(typeName)
			if err != nil {
				return err
			}

			raw, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			opts := a.literalOptions(settings)

			var out string
			if dump {
				target := reflect.New(hint)
				if err := json.Unmarshal(raw, target.Interface()); err != nil {
					return errors.Wrapf(err, "decode %s", hint)
				}

				spew.Fdump(cmd.ErrOrStderr(), target.Elem().Interface())

				out, err = literal.Generate(target.Elem().Interface(), opts...)
			} else {
				out, err = literal.GenerateFromJSON(raw, hint, opts...)
			}

			if err != nil {
				return err
			}

			a.logger.Debug("generated literal", zap.Stringer("type", hint), zap.Int("length", len(out)))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "object", "Type to decode the document into")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the decoded Go value to stderr")

	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(stdin)

		return raw, errors.Wrap(err, "read stdin")
	}

	raw, err := os.ReadFile(args[0])

	return raw, errors.Wrapf(err, "read %s", args[0])
}
