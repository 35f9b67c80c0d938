// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/kyma-project/docnav/pkg/navigation"
	"github.com/kyma-project/docnav/pkg/render"
	"github.com/kyma-project/docnav/pkg/sidebar"
	"k8s.io/klog/v2"
)

var errDestinationRequired = errors.New("required flag \"destination\" not set, set it or use --dry-run")

// builtInManifest names the built-in navigation in logs and errors
const builtInManifest = "built-in Registry Proxy navigation"

func exec(ctx context.Context, options *Options, w *Writers) error {
	tree, source, err := loadNavigation(options.ManifestPath)
	if err != nil {
		return err
	}
	klog.Infof("Manifest: %s", source)
	if err := navigation.Validate(tree); err != nil {
		return fmt.Errorf("%s is invalid: %w", source, err)
	}
	renderers, err := newRenderers(options)
	if err != nil {
		return err
	}
	if !options.DryRun {
		klog.Infof("Output dir: %s", options.DestinationPath)
	}
	var errs *multierror.Error
	for _, r := range renderers {
		if err := ctx.Err(); err != nil {
			return err
		}
		var b bytes.Buffer
		if err := r.Render(&b, tree); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("rendering %s failed: %w", r.FileName(), err))
			continue
		}
		if err := w.Writer.Write(r.FileName(), "", b.Bytes()); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		klog.V(4).Infof("rendered %s", filepath.Join(options.DestinationPath, r.FileName()))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	if w.DryRunWriter != nil {
		return w.DryRunWriter.Flush()
	}
	return nil
}

// loadNavigation loads the manifest at path, or the built-in navigation
// for an empty path. The second result names the source
func loadNavigation(path string) (navigation.Tree, string, error) {
	if path == "" {
		return sidebar.RegistryProxy(), builtInManifest, nil
	}
	tree, err := navigation.Load(path)
	return tree, path, err
}

// newRenderers creates one renderer per output file. Formats resolving
// to the same file, like markdown and md, render once
func newRenderers(options *Options) ([]render.Renderer, error) {
	if len(options.Formats) == 0 {
		return nil, errors.New("no output format set")
	}
	var (
		renderers []render.Renderer
		files     = map[string]bool{}
		errs      *multierror.Error
	)
	for _, format := range options.Formats {
		r, err := render.New(format, render.Options{Hugo: options.Hugo.RenderOptions()})
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if files[r.FileName()] {
			continue
		}
		files[r.FileName()] = true
		renderers = append(renderers, r)
	}
	return renderers, errs.ErrorOrNil()
}
