// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package scaffold_test

import (
	"embed"
	"io/fs"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/kyma-project/docnav/pkg/internal/must"
	"github.com/kyma-project/docnav/pkg/navigation"
	"github.com/kyma-project/docnav/pkg/scaffold"
	"github.com/kyma-project/docnav/pkg/sidebar"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"
)

//go:embed all:testdata/docs
var testdata embed.FS

var _ = Describe("Build", func() {
	var (
		fsys fs.FS
		opts scaffold.Options
		tree navigation.Tree
		err  error
	)

	BeforeEach(func() {
		fsys = must.Succeed(fs.Sub(testdata, "testdata/docs"))
		opts = scaffold.Options{Collapsed: true}
	})

	JustBeforeEach(func() {
		tree, err = scaffold.Build(fsys, opts)
	})

	It("proposes the Registry Proxy sidebar for its docs", func() {
		Expect(err).ToNot(HaveOccurred())
		Expect(cmp.Diff(sidebar.RegistryProxy(), tree)).To(BeEmpty())
		Expect(navigation.Validate(tree)).To(Succeed())
	})

	Context("with expanded groups", func() {
		BeforeEach(func() {
			opts.Collapsed = false
		})

		It("keeps the collapsed flag present", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(tree[1].Collapsed).To(Equal(ptr.To(false)))
			Expect(tree[1].IsCollapsed()).To(BeFalse())
		})
	})

	Context("without weights", func() {
		BeforeEach(func() {
			fsys = fstest.MapFS{
				"README.md":              {Data: []byte("# Home\n")},
				"02-10-upgrade.md":       {Data: []byte("# Upgrade\n")},
				"01-10-install.md":       {Data: []byte("# Install\n")},
				"guides/README.md":       {Data: []byte("# Guides\n")},
				"guides/01-10-backup.md": {Data: []byte("# Backup\n")},
				"faq/README.md":          {Data: []byte("# FAQ\n")},
				"drafts/idea.md":         {Data: []byte("# Idea\n")},
				".hidden.md":             {Data: []byte("# Hidden\n")},
				"_sidebar.md":            {Data: []byte("- [Home](README.md)\n")},
				"logo.svg":               {Data: []byte("<svg/>")},
			}
		})

		It("orders siblings by name", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(tree).To(Equal(navigation.Tree{
				{Text: "Install", Link: "./01-10-install.md"},
				{Text: "Upgrade", Link: "./02-10-upgrade.md"},
				{Text: "FAQ", Link: "./faq/README"},
				{Text: "Guides", Link: "./guides/README", Collapsed: ptr.To(true), Items: []*navigation.Entry{
					{Text: "Backup", Link: "./guides/01-10-backup.md"},
				}},
			}))
		})

		It("turns a directory with only a section file into a link", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(tree[2].IsGroup()).To(BeFalse())
			Expect(tree[2].Items).To(BeNil())
			Expect(navigation.Validate(tree)).To(Succeed())
		})
	})

	Context("with a custom section file", func() {
		BeforeEach(func() {
			fsys = fstest.MapFS{
				"ops/_index.md":         {Data: []byte("---\ntitle: Operations\n---\n")},
				"ops/README.md":         {Data: []byte("# Ops readme\n")},
				"ops/monitoring.md":     {Data: []byte("Dashboards.\n")},
				"ops/backup_restore.md": {Data: []byte("Snapshots.\n")},
			}
			opts.SectionFile = "_index.md"
		})

		It("derives missing titles from file names", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(tree).To(HaveLen(1))
			Expect(tree[0].Text).To(Equal("Operations"))
			Expect(tree[0].Link).To(Equal("./ops/_index"))
			Expect(tree[0].Items).To(Equal([]*navigation.Entry{
				{Text: "Ops readme", Link: "./ops/README.md"},
				{Text: "Backup Restore", Link: "./ops/backup_restore.md"},
				{Text: "Monitoring", Link: "./ops/monitoring.md"},
			}))
		})
	})

	Context("with an empty directory", func() {
		BeforeEach(func() {
			fsys = fstest.MapFS{}
		})

		It("returns an empty tree", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(tree).ToNot(BeNil())
			Expect(tree).To(BeEmpty())
		})
	})

	Context("with invalid front matter", func() {
		BeforeEach(func() {
			fsys = fstest.MapFS{
				"broken.md": {Data: []byte("---\ntitle: [unclosed\n---\n# Broken\n")},
			}
		})

		It("fails naming the file", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("broken.md"))
			Expect(err.Error()).To(ContainSubstring("invalid front matter"))
		})
	})
})
