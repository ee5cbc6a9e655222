// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable stands in for build metadata that was not injected by
// -ldflags.
const NotAvailable = "N/A"

// AppBuildInfo is the build metadata of a rexora binary. Both the server and
// the admin client carry one; the server publishes it on GET /api/version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo replaces empty values with [NotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// String is the one-line form used by `rexora --version`.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}

// Response converts the build info into the /api/version body. Unknown date
// and commit are left out.
func (a AppBuildInfo) Response() VersionResponse {
	resp := VersionResponse{Version: a.BuildVersion()}
	if d := a.BuildDate(); d != NotAvailable {
		resp.Date = d
	}
	if c := a.BuildCommit(); c != NotAvailable {
		resp.Commit = c
	}
	return resp
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
