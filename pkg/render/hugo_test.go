// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package render_test

import (
	"github.com/kyma-project/docnav/pkg/navigation"
	"github.com/kyma-project/docnav/pkg/render"
	"github.com/kyma-project/docnav/pkg/sidebar"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Hugo", func() {
	sectionFiles := []string{"readme.md", "README.md", "README"}

	It("renders a menu with pretty urls", func() {
		r := render.NewHugo(render.HugoOptions{PrettyURLs: true, SectionFiles: sectionFiles})
		tree := sidebar.RegistryProxy()[:3]
		Expect(renderString(r, tree)).To(Equal(`menu:
  docs:
    - identifier: nav-0
      name: Registry Proxy Recommendations
      url: /00-10-recommendations/
      weight: 10
    - identifier: nav-1
      name: Tutorials
      url: /tutorials/
      weight: 20
      params:
        collapsed: true
    - identifier: nav-1-0
      name: Create Kyma Registry Proxy Connection and a Target Deployment
      url: /tutorials/01-10-registry-proxy-connection/
      weight: 10
      parent: nav-1
    - identifier: nav-2
      name: Resources
      url: /resources/
      weight: 30
      params:
        collapsed: true
    - identifier: nav-2-0
      name: Connection CR
      url: /resources/01-10-connection-cr/
      weight: 10
      parent: nav-2
    - identifier: nav-2-1
      name: Registry Proxy CR
      url: /resources/01-20-registry-proxy-cr/
      weight: 20
      parent: nav-2
`))
	})

	It("renders html urls under a base url", func() {
		r := render.NewHugo(render.HugoOptions{
			Menu:         "registryproxy",
			BaseURL:      "https://kyma-project.io/docs/registry-proxy",
			SectionFiles: sectionFiles,
		})
		tree := navigation.Tree{
			{Text: "Recommendations", Link: "./00-10-recommendations.md"},
			{Text: "Tutorials", Link: "./tutorials/README", Items: []*navigation.Entry{{Text: "Kyma", Link: "https://kyma-project.io"}}},
		}
		Expect(renderString(r, tree)).To(Equal(`menu:
  registryproxy:
    - identifier: nav-0
      name: Recommendations
      url: https://kyma-project.io/docs/registry-proxy/00-10-recommendations.html
      weight: 10
    - identifier: nav-1
      name: Tutorials
      url: https://kyma-project.io/docs/registry-proxy/tutorials/index.html
      weight: 20
    - identifier: nav-1-0
      name: Kyma
      url: https://kyma-project.io
      weight: 10
      parent: nav-1
`))
	})

	It("resolves parent links against the base url", func() {
		r := render.NewHugo(render.HugoOptions{PrettyURLs: true, BaseURL: "/docs/registry-proxy", SectionFiles: sectionFiles})
		tree := navigation.Tree{
			{Text: "Overview", Link: "../overview.md"},
			{Text: "Local overview", Link: "./overview.md"},
		}
		Expect(renderString(r, tree)).To(Equal(`menu:
  docs:
    - identifier: nav-0
      name: Overview
      url: /docs/overview/
      weight: 10
    - identifier: nav-1
      name: Local overview
      url: /docs/registry-proxy/overview/
      weight: 20
`))
	})

	It("renders an empty menu", func() {
		Expect(renderString(render.NewHugo(render.HugoOptions{}), nil)).To(Equal("menu:\n  docs: []\n"))
	})
})
