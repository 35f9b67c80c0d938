// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/kyma-project/docnav/cmd/hugo"
	"github.com/kyma-project/docnav/pkg/render"
	"github.com/kyma-project/docnav/pkg/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("destination", "d", "",
		"Destination path. Required unless --dry-run is set.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().StringP("manifest", "f", "",
		"Navigation manifest path (.yaml, .json or .ts). The built-in Registry Proxy navigation is used when omitted.")
	_ = vip.BindPFlag("manifest", command.Flags().Lookup("manifest"))

	command.Flags().StringSlice("formats", []string{render.FormatMarkdown},
		fmt.Sprintf("Output formats, one file per format. Supported: %v", render.Formats()))
	_ = vip.BindPFlag("formats", command.Flags().Lookup("formats"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	hugo.ConfigureFlags(command, vip)
}

func configureManifestFlag(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("manifest", "f", "",
		"Navigation manifest path (.yaml, .json or .ts).")
	_ = vip.BindPFlag("manifest", command.Flags().Lookup("manifest"))
}

func configureScaffoldFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().String("docs-dir", "",
		"Documentation directory to propose the navigation for.")
	_ = vip.BindPFlag("docs-dir", command.Flags().Lookup("docs-dir"))

	command.Flags().String("format", "",
		"Manifest format (yaml, json or ts). Derived from --output when omitted, yaml otherwise.")
	_ = vip.BindPFlag("format", command.Flags().Lookup("format"))

	command.Flags().StringP("output", "o", "",
		"Manifest file to write. The manifest is printed to the standard output when omitted.")
	_ = vip.BindPFlag("output", command.Flags().Lookup("output"))

	command.Flags().Bool("collapsed", true,
		"Initial collapse state of the proposed groups.")
	_ = vip.BindPFlag("collapsed", command.Flags().Lookup("collapsed"))

	command.Flags().String("section-file", scaffold.DefaultSectionFile,
		"File turning a directory into a navigation group.")
	_ = vip.BindPFlag("section-file", command.Flags().Lookup("section-file"))
}
