package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> [key...]",
		Short: "Print the element of a YAML document found by following keys",
		Long: `Print the element of a YAML document found by following keys.

Use "-" as file to read the document from stdin. Without keys the whole
document is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.logger.Debug("get", zap.String("file", args[0]), zap.Strings("keys", args[1:]))

			res, err := a.walk(doc, args[1:])
			if err != nil {
				return err
			}
			return encodeDocument(cmd.OutOrStdout(), res)
		},
	}
}
