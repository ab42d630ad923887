// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"os"

	"github.com/db47h/logicboard/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of level files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := level.SchemaJSON()
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return errors.Wrap(os.WriteFile(out, data, 0o644), "write schema")
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the schema to this file")
	return cmd
}
