// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package version carries the build version of docnav
package version

// Version is set during compile time via -ldflags in the `go build` process.
// It has the form v<X>.<Y>.<Z> for released binaries.
var Version = "binary was not built properly"
