// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config is the content of the configuration file. Unset fields keep the
// defaults of the corresponding command line flags.
type Config struct {
	PicGoPath               *string `yaml:"picgo-path,omitempty"`
	UploadTimeout           *string `yaml:"upload-timeout,omitempty"`
	UploadWorkers           *int    `yaml:"upload-workers,omitempty"`
	Listen                  *string `yaml:"listen,omitempty"`
	MediaDir                *string `yaml:"media-dir,omitempty"`
	CDN                     *string `yaml:"cdn,omitempty"`
	OpenCommand             *string `yaml:"open-command,omitempty"`
	EnableFindWidget        *bool   `yaml:"enable-find-widget,omitempty"`
	RetainContextWhenHidden *bool   `yaml:"retain-context-when-hidden,omitempty"`
}

// Settings returns the configured values by key
func (c *Config) Settings() map[string]interface{} {
	settings := map[string]interface{}{}
	if c == nil {
		return settings
	}
	if c.PicGoPath != nil {
		settings["picgo-path"] = *c.PicGoPath
	}
	if c.UploadTimeout != nil {
		settings["upload-timeout"] = *c.UploadTimeout
	}
	if c.UploadWorkers != nil {
		settings["upload-workers"] = *c.UploadWorkers
	}
	if c.Listen != nil {
		settings["listen"] = *c.Listen
	}
	if c.MediaDir != nil {
		settings["media-dir"] = *c.MediaDir
	}
	if c.CDN != nil {
		settings["cdn"] = *c.CDN
	}
	if c.OpenCommand != nil {
		settings["open-command"] = *c.OpenCommand
	}
	if c.EnableFindWidget != nil {
		settings["enable-find-widget"] = *c.EnableFindWidget
	}
	if c.RetainContextWhenHidden != nil {
		settings["retain-context-when-hidden"] = *c.RetainContextWhenHidden
	}
	return settings
}
