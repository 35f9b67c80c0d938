// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"

	"github.com/kyma-project/docnav/cmd/configuration"
	"github.com/kyma-project/docnav/pkg/util/files"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func newWatchCmd(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render the navigation and render it again on every manifest change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			options := &Options{}
			if err := loadOptions(vip, loader, options); err != nil {
				return err
			}
			if options.ManifestPath == "" {
				return errors.New("required flag \"manifest\" not set")
			}
			return watch(ctx, options, func() (*Writers, error) {
				return newWriters(options, cmd.OutOrStdout())
			})
		},
	}
	configureFlags(cmd, vip)
	return cmd
}

// watch renders once and then after every change of the manifest until
// ctx is done. Failed renders triggered by changes are logged
func watch(ctx context.Context, options *Options, writers func() (*Writers, error)) error {
	run := func() error {
		w, err := writers()
		if err != nil {
			return err
		}
		return exec(ctx, options, w)
	}
	if err := run(); err != nil {
		return err
	}
	watcher := files.NewFileWatcher()
	if err := watcher.AddToWatch(options.ManifestPath); err != nil {
		return err
	}
	klog.Infof("watching %s for changes", options.ManifestPath)
	return watcher.Watch(ctx, func() error {
		klog.Infof("%s changed, rendering", options.ManifestPath)
		return run()
	})
}
