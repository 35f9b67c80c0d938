// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyma-project/docnav/cmd/configuration"
	"github.com/kyma-project/docnav/pkg/navigation"
	"github.com/kyma-project/docnav/pkg/scaffold"
	"github.com/kyma-project/docnav/pkg/writers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func newScaffoldCmd(loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Propose a navigation manifest for a documentation directory",
		Long: `Walks a documentation directory and proposes a navigation manifest.
Markdown files become links, directories with a section file become groups.
Titles come from the front matter title or the first heading of each file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			options := &ScaffoldOptions{}
			if err := loadOptions(vip, loader, options); err != nil {
				return err
			}
			if options.DocsDir == "" {
				return errors.New("required flag \"docs-dir\" not set")
			}
			format, err := scaffoldFormat(options)
			if err != nil {
				return err
			}
			if info, err := os.Stat(options.DocsDir); err != nil {
				return fmt.Errorf("reading docs directory fails: %w", err)
			} else if !info.IsDir() {
				return fmt.Errorf("docs path %s is a file, instead of directory", options.DocsDir)
			}
			tree, err := scaffold.Build(os.DirFS(options.DocsDir), scaffold.Options{
				SectionFile: options.SectionFile,
				Collapsed:   options.Collapsed,
			})
			if err != nil {
				return err
			}
			content, err := navigation.Marshal(tree, format)
			if err != nil {
				return err
			}
			if options.Output == "" {
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}
			w := writers.NewFSWriter(filepath.Dir(options.Output))
			if err := w.Write(filepath.Base(options.Output), "", content); err != nil {
				return err
			}
			klog.Infof("proposed navigation with %d entries written to %s", tree.Len(), options.Output)
			return nil
		},
	}
	configureScaffoldFlags(cmd, vip)
	return cmd
}

func scaffoldFormat(options *ScaffoldOptions) (navigation.Format, error) {
	if options.Format != "" {
		return navigation.ParseFormat(options.Format)
	}
	if options.Output != "" {
		format, err := navigation.FormatFromPath(options.Output)
		if err != nil {
			return "", fmt.Errorf("set --format for output %s: %w", options.Output, err)
		}
		return format, nil
	}
	return navigation.FormatYAML, nil
}
