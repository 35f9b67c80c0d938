// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"io"

	"github.com/kyma-project/docnav/cmd/configuration"
	"github.com/kyma-project/docnav/cmd/gendocs"
	"github.com/kyma-project/docnav/cmd/version"
	"github.com/kyma-project/docnav/pkg/writers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCommand creates a new root command and propagates
// the context to its Run callback closures
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "docnav",
		Short: "Render documentation sidebar navigation",
		Long: `Renders the sidebar navigation of a documentation site from a navigation
manifest into the documents site generators consume.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			options := &Options{}
			if err := loadOptions(vip, loader, options); err != nil {
				return err
			}
			w, err := newWriters(options, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return exec(ctx, options, w)
		},
	}
	configureFlags(cmd, vip)

	cmd.AddCommand(newValidateCmd(loader))
	cmd.AddCommand(newScaffoldCmd(loader))
	cmd.AddCommand(newWatchCmd(ctx, loader))
	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	AddFlags(cmd)

	return cmd
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}

// loadOptions reads the configuration file and environment into vip
// and decodes the result into options
func loadOptions(vip *viper.Viper, loader configuration.Loader, options interface{}) error {
	if err := loader.Load(vip); err != nil {
		return err
	}
	return vip.Unmarshal(options)
}

func newWriters(options *Options, out io.Writer) (*Writers, error) {
	if options.DryRun {
		dryRunWriter := writers.NewDryRunWritersFactory(out)
		return &Writers{
			Writer:       dryRunWriter.GetWriter(options.DestinationPath),
			DryRunWriter: dryRunWriter,
		}, nil
	}
	if options.DestinationPath == "" {
		return nil, errDestinationRequired
	}
	return &Writers{Writer: writers.NewFSWriter(options.DestinationPath)}, nil
}
