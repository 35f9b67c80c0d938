// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation_test

import (
	"github.com/kyma-project/docnav/pkg/navigation"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate", func() {
	It("accepts a valid tree", func() {
		Expect(navigation.Validate(sampleTree())).To(Succeed())
	})

	It("accepts an empty tree", func() {
		Expect(navigation.Validate(nil)).To(Succeed())
		Expect(navigation.Validate(navigation.Tree{})).To(Succeed())
	})

	DescribeTable("reports invalid entries",
		func(tree navigation.Tree, expected []navigation.ValidationError) {
			err := navigation.Validate(tree)
			Expect(err).To(HaveOccurred())
			violations := navigation.Violations(err)
			Expect(violations).To(HaveLen(len(expected)))
			for i := range expected {
				Expect(*violations[i]).To(Equal(expected[i]))
			}
		},
		Entry("empty text", navigation.Tree{{Link: "./a.md"}},
			[]navigation.ValidationError{{Path: "[0]", Reason: navigation.ReasonEmptyText}}),
		Entry("blank text", navigation.Tree{{Text: "  ", Link: "./a.md"}},
			[]navigation.ValidationError{{Path: "[0]", Reason: navigation.ReasonEmptyText}}),
		Entry("empty link", navigation.Tree{{Text: "A"}},
			[]navigation.ValidationError{{Path: "[0]", Text: "A", Reason: navigation.ReasonEmptyLink}}),
		Entry("nil entry", navigation.Tree{{Text: "A", Link: "a"}, nil},
			[]navigation.ValidationError{{Path: "[1]", Reason: navigation.ReasonNilEntry}}),
		Entry("empty items", navigation.Tree{{Text: "A", Link: "a", Items: []*navigation.Entry{}}},
			[]navigation.ValidationError{{Path: "[0]", Text: "A", Reason: navigation.ReasonEmptyItems}}),
		Entry("nested violations", navigation.Tree{{Text: "A", Link: "a", Items: []*navigation.Entry{
			{Text: "B", Link: "b"},
			{Text: "C", Items: []*navigation.Entry{{Link: "d"}}},
		}}},
			[]navigation.ValidationError{
				{Path: "[0].items[1]", Text: "C", Reason: navigation.ReasonEmptyLink},
				{Path: "[0].items[1].items[0]", Reason: navigation.ReasonEmptyText},
			}),
	)

	It("reports cycles instead of recursing forever", func() {
		group := &navigation.Entry{Text: "Group", Link: "./group/README"}
		group.Items = []*navigation.Entry{{Text: "Child", Link: "./group/child.md"}, group}
		err := navigation.Validate(navigation.Tree{group})
		Expect(navigation.Violations(err)).To(ConsistOf(&navigation.ValidationError{
			Path: "[0].items[1]", Text: "Group", Reason: navigation.ReasonCycle,
		}))
	})

	It("allows the same entry in sibling branches", func() {
		shared := &navigation.Entry{Text: "Shared", Link: "./shared.md"}
		tree := navigation.Tree{
			{Text: "A", Link: "a", Items: []*navigation.Entry{shared}},
			{Text: "B", Link: "b", Items: []*navigation.Entry{shared}},
		}
		Expect(navigation.Validate(tree)).To(Succeed())
	})

	It("formats violations with position and text", func() {
		err := navigation.Validate(navigation.Tree{{Text: "A"}, {Link: "b"}})
		Expect(err.Error()).To(ContainSubstring(`[0] ("A"): link is empty`))
		Expect(err.Error()).To(ContainSubstring(`[1]: text is empty`))
	})

	It("collects violations of a loaded file", func() {
		tree, err := navigation.Load("testdata/invalid.yaml")
		Expect(err).ToNot(HaveOccurred())
		violations := navigation.Violations(navigation.Validate(tree))
		Expect(violations).To(HaveLen(3))
		Expect(violations[0].Reason).To(Equal(navigation.ReasonEmptyText))
		Expect(violations[1].Reason).To(Equal(navigation.ReasonEmptyItems))
		Expect(violations[2].Path).To(Equal("[2].items[0]"))
		Expect(violations[2].Reason).To(Equal(navigation.ReasonEmptyLink))
	})

	It("returns nil violations for a nil error", func() {
		Expect(navigation.Violations(nil)).To(BeNil())
	})
})
