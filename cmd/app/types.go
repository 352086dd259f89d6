// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Options are the effective settings of flags, environment and
// configuration file
type Options struct {
	PicGoPath               string        `mapstructure:"picgo-path" yaml:"picgo-path"`
	UploadTimeout           time.Duration `mapstructure:"upload-timeout" yaml:"-"`
	UploadWorkers           int           `mapstructure:"upload-workers" yaml:"upload-workers"`
	Listen                  string        `mapstructure:"listen" yaml:"listen"`
	MediaDir                string        `mapstructure:"media-dir" yaml:"media-dir"`
	CDN                     string        `mapstructure:"cdn" yaml:"cdn"`
	OpenCommand             string        `mapstructure:"open-command" yaml:"open-command"`
	EnableFindWidget        bool          `mapstructure:"enable-find-widget" yaml:"enable-find-widget"`
	RetainContextWhenHidden bool          `mapstructure:"retain-context-when-hidden" yaml:"retain-context-when-hidden"`
	Document                string        `mapstructure:"document" yaml:"-"`
	DryRun                  bool          `mapstructure:"dry-run" yaml:"-"`
}

// MarshalYAML renders the upload timeout as a duration string
func (o Options) MarshalYAML() (interface{}, error) {
	type plain Options
	return struct {
		plain         `yaml:",inline"`
		UploadTimeout string `yaml:"upload-timeout"`
	}{plain(o), o.UploadTimeout.String()}, nil
}

func newOptions(vip *viper.Viper) (*Options, error) {
	options := &Options{}
	if err := vip.Unmarshal(options); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if options.UploadTimeout < 0 {
		return nil, fmt.Errorf("upload-timeout must not be negative: %s", options.UploadTimeout)
	}
	if options.UploadWorkers < 1 {
		return nil, fmt.Errorf("upload-workers must be at least 1: %d", options.UploadWorkers)
	}
	return options, nil
}
