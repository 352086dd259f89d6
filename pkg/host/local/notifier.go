// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"time"

	"k8s.io/klog/v2"
)

// LogNotifier reports user notifications to the log
type LogNotifier struct{}

// ShowInformation logs message at info level
func (LogNotifier) ShowInformation(message string) {
	klog.Info(message)
}

// ShowError logs message at error level
func (LogNotifier) ShowError(message string) {
	klog.Error(message)
}

// WithProgress logs the start and the duration of task
func (LogNotifier) WithProgress(ctx context.Context, title string, task func(ctx context.Context) error) error {
	klog.Info(title)
	t := time.Now()
	err := task(ctx)
	klog.V(4).Infof("%s finished in %s", title, time.Since(t))
	return err
}
