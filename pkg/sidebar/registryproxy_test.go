// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar_test

import (
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/kyma-project/docnav/pkg/navigation"
	"github.com/kyma-project/docnav/pkg/sidebar"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegistryProxy", func() {
	It("is a valid navigation", func() {
		Expect(navigation.Validate(sidebar.RegistryProxy())).To(Succeed())
	})

	It("matches the published _sidebar.ts", func() {
		published, err := navigation.Load("testdata/_sidebar.ts")
		Expect(err).ToNot(HaveOccurred())
		Expect(cmp.Diff(published, sidebar.RegistryProxy())).To(BeEmpty())
	})

	It("keeps the declaration order", func() {
		var texts []string
		Expect(sidebar.RegistryProxy().Walk(func(e *navigation.Entry, depth int, _ []int) error {
			texts = append(texts, e.Text)
			return nil
		})).To(Succeed())
		Expect(texts).To(Equal([]string{
			"Registry Proxy Recommendations",
			"Tutorials",
			"Create Kyma Registry Proxy Connection and a Target Deployment",
			"Resources",
			"Connection CR",
			"Registry Proxy CR",
			"Technical Reference",
			"Architecture",
		}))
	})

	It("collapses every group", func() {
		for _, e := range sidebar.RegistryProxy() {
			if e.IsGroup() {
				Expect(e.IsCollapsed()).To(BeTrue(), e.Text)
			} else {
				Expect(e.Collapsed).To(BeNil(), e.Text)
			}
		}
	})

	It("hands out independent copies", func() {
		first := sidebar.RegistryProxy()
		first[1].Text = "changed"
		first[1].Items = append(first[1].Items, &navigation.Entry{Text: "x", Link: "y"})
		*first[2].Collapsed = false

		second := sidebar.RegistryProxy()
		Expect(second[1].Text).To(Equal("Tutorials"))
		Expect(second[1].Items).To(HaveLen(1))
		Expect(second[2].IsCollapsed()).To(BeTrue())
	})

	It("can be read concurrently", func() {
		var wg sync.WaitGroup
		counts := make([]int, 8)
		for i := range counts {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				counts[i] = sidebar.RegistryProxy().Len()
			}(i)
		}
		wg.Wait()
		for _, c := range counts {
			Expect(c).To(Equal(8))
		}
	})
})
