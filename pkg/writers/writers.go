// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Writer persists document content at a file path
//
//counterfeiter:generate . Writer
type Writer interface {
	Write(path string, content []byte) error
}
