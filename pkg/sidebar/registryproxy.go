// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package sidebar holds the navigation of the Registry Proxy user documentation.
package sidebar

import (
	"github.com/kyma-project/docnav/pkg/navigation"
	"k8s.io/utils/ptr"
)

var registryProxy = navigation.Tree{
	{Text: "Registry Proxy Recommendations", Link: "./00-10-recommendations.md"},
	{Text: "Tutorials", Link: "./tutorials/README", Collapsed: ptr.To(true), Items: []*navigation.Entry{
		{Text: "Create Kyma Registry Proxy Connection and a Target Deployment", Link: "./tutorials/01-10-registry-proxy-connection.md"},
	}},
	{Text: "Resources", Link: "./resources/README", Collapsed: ptr.To(true), Items: []*navigation.Entry{
		{Text: "Connection CR", Link: "./resources/01-10-connection-cr.md"},
		{Text: "Registry Proxy CR", Link: "./resources/01-20-registry-proxy-cr.md"},
	}},
	{Text: "Technical Reference", Link: "./technical-reference/README", Collapsed: ptr.To(true), Items: []*navigation.Entry{
		{Text: "Architecture", Link: "./technical-reference/00-10-architecture.md"},
	}},
}

// RegistryProxy returns the sidebar of the Registry Proxy user
// documentation. Every call returns a new copy
func RegistryProxy() navigation.Tree {
	return registryProxy.Clone()
}
