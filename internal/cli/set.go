package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/toolkit_ive_go/coerce"
)

func newSetCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "set <file> <value> <key> [key...]",
		Short: "Set the element found by following keys and print the document",
		Long: `Set the element found by following keys and print the updated document.

The value is coerced, so "8080" is stored as a number.
A top-level sequence grows to fit the last index; nested sequences only
accept indexes they already hold.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if write && path == stdinPath {
				return fmt.Errorf("--write needs a file, not stdin")
			}
			doc, err := readDocument(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			value := coerce.TryReal(args[1])
			keys := args[2:]
			a.logger.Debug("set", zap.String("file", path), zap.Strings("keys", keys), zap.Any("value", value))

			doc, err = a.setPath(doc, value, keys)
			if err != nil {
				return err
			}
			if write {
				return writeDocument(path, doc)
			}
			return encodeDocument(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	return cmd
}

// setPath sets the element under keys to value and returns the document,
// which is replaced when a top-level sequence grows.
func (a *app) setPath(doc, value any, keys []string) (any, error) {
	parents, last := keys[:len(keys)-1], keys[len(keys)-1]

	if len(parents) == 0 {
		if list, ok := doc.([]any); ok {
			if _, err := a.accessor.SetIndex(&list, keyFor(list, last), value); err != nil {
				return nil, err
			}
			return list, nil
		}
		_, err := a.accessor.SetIndex(doc, keyFor(doc, last), value)
		return doc, err
	}

	parent, err := a.walk(doc, parents)
	if err != nil {
		return nil, err
	}
	if _, err := a.accessor.SetIndex(parent, keyFor(parent, last), value); err != nil {
		return nil, err
	}
	return doc, nil
}
