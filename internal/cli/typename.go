package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"literal-generator/literal"
)

func (a *app) typenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "typename <type>",
		Short: "Print the literal name of a known type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}

			rt, err := a.types.Lookup(args[0])
			if err != nil {
				return err
			}

			name, err := literal.GetTypeName(rt, a.literalOptions(settings)...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)

			return err
		},
	}
}
