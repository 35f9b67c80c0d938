// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package must holds assertions. Assertions detect programmer errors,
// unlike operating errors which are expected and must be handled. The
// only correct way to handle broken code is to crash.
package must

import "fmt"

// Succeed panics on error.
func Succeed[T any](obj T, err error) T {
	if err != nil {
		panic(fmt.Errorf("assertion broken: %w", err))
	}
	return obj
}
