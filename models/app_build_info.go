// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build metadata that was not linked in.
const NotAvailable = "N/A"

// AppBuildInfo is the link-time build metadata of a binary. The client
// shows it in the about window and compares the version with the server's
// at startup.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo trims the values and replaces blank ones with
// [NotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.buildDate) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.buildCommit) }

// HasVersion reports whether a real version was linked in.
func (a AppBuildInfo) HasVersion() bool {
	return a.BuildVersion() != NotAvailable
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
