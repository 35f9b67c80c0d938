// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package version_test

import (
	"github.com/kyma-project/docnav/pkg/version"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Version", func() {
	It("reports an unreleased build", func() {
		Expect(version.Version).To(Equal("binary was not built properly"))
	})
})
