// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/kyma-project/docnav/cmd/hugo"
	"github.com/kyma-project/docnav/pkg/writers"
)

// Options encapsulates the parameters of a render run
type Options struct {
	ManifestPath    string   `mapstructure:"manifest"`
	DestinationPath string   `mapstructure:"destination"`
	Formats         []string `mapstructure:"formats"`
	DryRun          bool     `mapstructure:"dry-run"`
	hugo.Hugo       `mapstructure:",squash"`
}

// ScaffoldOptions encapsulates the parameters of the scaffold command
type ScaffoldOptions struct {
	DocsDir     string `mapstructure:"docs-dir"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Collapsed   bool   `mapstructure:"collapsed"`
	SectionFile string `mapstructure:"section-file"`
}

// Writers collects the writers of a render run
type Writers struct {
	Writer       writers.Writer
	DryRunWriter writers.DryRunWriter
}
