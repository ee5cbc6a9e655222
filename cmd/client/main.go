package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/rexora-cms/internal/client"
	"github.com/MKhiriev/rexora-cms/models"
)

// Set with -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var app client.Client = client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
