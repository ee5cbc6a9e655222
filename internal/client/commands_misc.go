package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.signIn(ctx); err != nil {
				return err
			}

			stats, err := a.services.AdminService.GetStats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total projects:   %d\n", stats.TotalProjects)
			fmt.Fprintf(out, "Active services:  %d\n", stats.ActiveServices)
			fmt.Fprintf(out, "Added this week:  %d\n", stats.RecentProjects)
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the client build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())
		},
	}
}

func (a *App) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive admin panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}
}
