package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/toolkit_ive_go/coerce"
	"github.com/on-the-ground/toolkit_ive_go/overload"
)

func newCoerceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "coerce <value>...",
		Short: "Show how values are read as numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range coerce.TryRealAll(args...) {
				a.logger.Debug("coerced", zap.Any("value", v))
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%v\t%s\n", v, overload.TagOf(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
