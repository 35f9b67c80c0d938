// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package hugo

import (
	"github.com/kyma-project/docnav/pkg/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Hugo is the configuration options for the hugo menu output
type Hugo struct {
	Menu         string   `mapstructure:"hugo-menu"`
	PrettyURLs   bool     `mapstructure:"hugo-pretty-urls"`
	BaseURL      string   `mapstructure:"hugo-base-url"`
	SectionFiles []string `mapstructure:"hugo-section-files"`
}

// RenderOptions converts the options for the hugo renderer
func (h Hugo) RenderOptions() render.HugoOptions {
	return render.HugoOptions{
		Menu:         h.Menu,
		PrettyURLs:   h.PrettyURLs,
		BaseURL:      h.BaseURL,
		SectionFiles: h.SectionFiles,
	}
}

// ConfigureFlags adds the hugo flags to command and binds them to vip
func ConfigureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().String("hugo-menu", "docs",
		"Name of the hugo menu the navigation is rendered into. Only useful with --formats=hugo")
	_ = vip.BindPFlag("hugo-menu", command.Flags().Lookup("hugo-menu"))

	command.Flags().Bool("hugo-pretty-urls", true,
		"Render menu URLs for hugo pretty URLs (./sample.md -> sample/). Only useful with --formats=hugo")
	_ = vip.BindPFlag("hugo-pretty-urls", command.Flags().Lookup("hugo-pretty-urls"))

	command.Flags().String("hugo-base-url", "",
		"Prefixes the relative menu URLs to make them root-relative or absolute. Only useful with --formats=hugo")
	_ = vip.BindPFlag("hugo-base-url", command.Flags().Lookup("hugo-base-url"))

	command.Flags().StringSlice("hugo-section-files", []string{"readme.md", "readme", "index.md", "index"},
		"Links to files with a name matching one from this list resolve to their directory. Only useful with --formats=hugo")
	_ = vip.BindPFlag("hugo-section-files", command.Flags().Lookup("hugo-section-files"))
}
