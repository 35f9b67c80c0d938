// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"

	"github.com/kyma-project/docnav/cmd/configuration"
	"github.com/kyma-project/docnav/pkg/navigation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a navigation manifest",
		Long: `Loads a navigation manifest and reports every entry with an empty text
or link, an empty items list, or an entry nested in itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			options := &Options{}
			if err := loadOptions(vip, loader, options); err != nil {
				return err
			}
			if options.ManifestPath == "" {
				return errors.New("required flag \"manifest\" not set")
			}
			tree, err := navigation.Load(options.ManifestPath)
			if err != nil {
				return err
			}
			if err := navigation.Validate(tree); err != nil {
				return fmt.Errorf("%s is invalid: %w", options.ManifestPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d entries)\n", options.ManifestPath, tree.Len())
			return nil
		},
	}
	configureManifestFlag(cmd, vip)
	return cmd
}
