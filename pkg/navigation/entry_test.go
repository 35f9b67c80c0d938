// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation_test

import (
	"errors"

	"github.com/kyma-project/docnav/pkg/navigation"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"
)

func sampleTree() navigation.Tree {
	return navigation.Tree{
		{Text: "Registry Proxy Recommendations", Link: "./00-10-recommendations.md"},
		{Text: "Tutorials", Link: "./tutorials/README", Collapsed: ptr.To(true), Items: []*navigation.Entry{
			{Text: "Create Kyma Registry Proxy Connection and a Target Deployment", Link: "./tutorials/01-10-registry-proxy-connection.md"},
		}},
		{Text: "Resources", Link: "./resources/README", Collapsed: ptr.To(false), Items: []*navigation.Entry{
			{Text: "Connection CR", Link: "./resources/01-10-connection-cr.md"},
			{Text: "Registry Proxy CR", Link: "./resources/01-20-registry-proxy-cr.md"},
		}},
	}
}

var _ = Describe("Entry", func() {
	It("tells groups from links", func() {
		tree := sampleTree()
		Expect(tree[0].IsGroup()).To(BeFalse())
		Expect(tree[1].IsGroup()).To(BeTrue())
	})

	It("is collapsed only when set to true", func() {
		tree := sampleTree()
		Expect(tree[0].IsCollapsed()).To(BeFalse())
		Expect(tree[1].IsCollapsed()).To(BeTrue())
		Expect(tree[2].IsCollapsed()).To(BeFalse())
	})

	It("prints as yaml", func() {
		Expect(sampleTree()[1].String()).To(Equal(`text: Tutorials
link: ./tutorials/README
collapsed: true
items:
    - text: Create Kyma Registry Proxy Connection and a Target Deployment
      link: ./tutorials/01-10-registry-proxy-connection.md
`))
	})
})

var _ = Describe("Tree", func() {
	Describe("Clone", func() {
		It("copies every level", func() {
			tree := sampleTree()
			clone := tree.Clone()
			Expect(clone).To(Equal(tree))

			clone[1].Items[0].Text = "changed"
			*clone[2].Collapsed = true
			Expect(tree[1].Items[0].Text).To(Equal("Create Kyma Registry Proxy Connection and a Target Deployment"))
			Expect(tree[2].IsCollapsed()).To(BeFalse())
		})

		It("keeps nil and empty apart", func() {
			Expect(navigation.Tree(nil).Clone()).To(BeNil())
			clone := navigation.Tree{{Text: "a", Link: "b", Items: []*navigation.Entry{}}}.Clone()
			Expect(clone[0].Items).ToNot(BeNil())
			Expect(clone[0].Items).To(BeEmpty())
		})
	})

	Describe("Walk", func() {
		It("visits parents before items in declaration order", func() {
			type visit struct {
				text  string
				depth int
				path  []int
			}
			var visits []visit
			err := sampleTree().Walk(func(e *navigation.Entry, depth int, path []int) error {
				visits = append(visits, visit{e.Text, depth, path})
				return nil
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(visits).To(Equal([]visit{
				{"Registry Proxy Recommendations", 0, []int{0}},
				{"Tutorials", 0, []int{1}},
				{"Create Kyma Registry Proxy Connection and a Target Deployment", 1, []int{1, 0}},
				{"Resources", 0, []int{2}},
				{"Connection CR", 1, []int{2, 0}},
				{"Registry Proxy CR", 1, []int{2, 1}},
			}))
		})

		It("stops on ErrStopWalk", func() {
			count := 0
			err := sampleTree().Walk(func(e *navigation.Entry, _ int, _ []int) error {
				count++
				if e.Text == "Tutorials" {
					return navigation.ErrStopWalk
				}
				return nil
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(2))
		})

		It("returns other errors", func() {
			boom := errors.New("boom")
			err := sampleTree().Walk(func(_ *navigation.Entry, _ int, _ []int) error {
				return boom
			})
			Expect(err).To(MatchError(boom))
		})

		It("skips nil entries", func() {
			tree := navigation.Tree{nil, {Text: "a", Link: "b"}}
			Expect(tree.Len()).To(Equal(1))
		})
	})

	It("counts entries at all levels", func() {
		Expect(sampleTree().Len()).To(Equal(6))
		Expect(navigation.Tree{}.Len()).To(Equal(0))
	})
})
