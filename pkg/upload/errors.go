// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnparsableOutput matches every *UnparsableOutputError with errors.Is
var ErrUnparsableOutput = errors.New("upload output unparsable")

// UnparsableOutputError is returned when the upload tool output contains no URL
type UnparsableOutputError struct {
	// Output is the captured standard output of the tool
	Output string
}

func (e *UnparsableOutputError) Error() string {
	return fmt.Sprintf("%v: could not find image URL in upload output. Output: %s", ErrUnparsableOutput, e.Output)
}

// Is implements the contract for errors.Is
func (e *UnparsableOutputError) Is(target error) bool {
	return target == ErrUnparsableOutput
}

// InvocationError is returned when the upload tool cannot be found, cannot be
// started or exits with a non-zero status
type InvocationError struct {
	Command string
	Args    []string
	// ExitStatus is the exit code of the tool, -1 when it did not run to completion
	ExitStatus int
	Stderr     string
	Err        error
}

func (e *InvocationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to run %s", strings.Join(append([]string{e.Command}, e.Args...), " "))
	if e.ExitStatus >= 0 {
		fmt.Fprintf(&b, " (exit status %d)", e.ExitStatus)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		fmt.Fprintf(&b, ": %s", stderr)
	}
	return b.String()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}
