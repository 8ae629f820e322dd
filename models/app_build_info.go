// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// AppBuildInfo is the build metadata injected into both binaries with
// -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String renders the build as "version (commit, date)". Values the linker
// did not set show as N/A.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orNA(a.buildVersion), orNA(a.buildCommit), orNA(a.buildDate))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
