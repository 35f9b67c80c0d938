// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation_test

import (
	"errors"
	"io/fs"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/kyma-project/docnav/pkg/navigation"
	"github.com/kyma-project/docnav/pkg/osfakes/osshim/osshimfakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Loader", func() {
	var (
		fakeOs *osshimfakes.FakeOs
		loader *navigation.Loader
	)

	BeforeEach(func() {
		fakeOs = &osshimfakes.FakeOs{}
		fakeOs.IsDirReturns(false, nil)
		fakeOs.IsNotExistCalls(os.IsNotExist)
		loader = &navigation.Loader{Os: fakeOs}
	})

	It("loads by file extension", func() {
		content, err := os.ReadFile("testdata/sidebar.json")
		Expect(err).ToNot(HaveOccurred())
		fakeOs.ReadFileReturns(content, nil)

		tree, err := loader.Load("docs/user/_sidebar.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(cmp.Diff(sampleTree(), tree)).To(BeEmpty())
		Expect(fakeOs.ReadFileArgsForCall(0)).To(Equal("docs/user/_sidebar.json"))
	})

	It("reports missing files", func() {
		fakeOs.IsDirReturns(false, fs.ErrNotExist)
		fakeOs.ReadFileReturns(nil, fs.ErrNotExist)
		_, err := loader.Load("missing.yaml")
		Expect(errors.Is(err, navigation.ErrNotFound)).To(BeTrue())
	})

	It("refuses directories", func() {
		fakeOs.IsDirReturns(true, nil)
		_, err := loader.Load("docs.yaml")
		Expect(err).To(MatchError("navigation path docs.yaml is a directory, instead of file"))
		Expect(fakeOs.ReadFileCallCount()).To(Equal(0))
	})

	It("refuses unknown extensions before touching the file system", func() {
		_, err := loader.Load("_sidebar.md")
		Expect(errors.Is(err, navigation.ErrUnknownFormat)).To(BeTrue())
		Expect(fakeOs.Invocations()).To(BeEmpty())
	})

	It("wraps read errors", func() {
		fakeOs.ReadFileReturns(nil, errors.New("permission denied"))
		_, err := loader.Load("_sidebar.ts")
		Expect(err).To(MatchError("reading navigation file _sidebar.ts fails: permission denied"))
	})

	It("names the file on parse errors", func() {
		fakeOs.ReadFileReturns([]byte("- text: [unclosed"), nil)
		_, err := loader.Load("broken.yaml")
		Expect(err).To(MatchError(HavePrefix("broken.yaml: can't parse navigation yaml content")))
	})

	It("reads from disk with the default shim", func() {
		tree, err := navigation.Load("testdata/sidebar.yaml")
		Expect(err).ToNot(HaveOccurred())
		Expect(tree).To(HaveLen(3))
		_, err = navigation.Load("testdata")
		Expect(err).To(HaveOccurred())
	})
})
