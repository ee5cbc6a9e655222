// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/rexora-cms/models"
)

// renderBuildInfoWindow shows the client build next to the version reported
// by the server.
func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	body := fmt.Sprintf(
		"Application : Rexora admin\nVersion     : %s\nBuild date  : %s\nCommit      : %s\n\nServer      : %s",
		info.BuildVersion(),
		info.BuildDate(),
		info.BuildCommit(),
		valueOrDash(serverVersion),
	)

	return renderPage("ABOUT", body, "esc: back")
}
