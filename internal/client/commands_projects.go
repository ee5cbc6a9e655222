package client

import (
	"fmt"

	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/spf13/cobra"
)

func (a *App) projectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List and manage portfolio projects",
	}

	cmd.AddCommand(
		a.projectsListCommand(),
		a.projectsGetCommand(),
		a.projectsCreateCommand(),
		a.projectsUpdateCommand(),
		a.projectsDeleteCommand(),
	)

	return cmd
}

func (a *App) projectsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects := a.services.ContentService.ListProjects(cmd.Context())
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{p.ID, p.Title, orDash(p.Category), formatTime(p.CreatedAt)})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "TITLE", "CATEGORY", "CREATED"}, rows)
		},
	}
}

func (a *App) projectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a project with its media URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := a.services.ContentService

			p, err := content.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			thumbnail := ""
			if p.Thumbnail != "" {
				thumbnail = content.MediaURL(p.Thumbnail)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:          %s\n", p.ID)
			fmt.Fprintf(out, "Title:       %s\n", p.Title)
			fmt.Fprintf(out, "Category:    %s\n", orDash(p.Category))
			fmt.Fprintf(out, "Description: %s\n", orDash(p.Description))
			fmt.Fprintf(out, "Created:     %s\n", formatTime(p.CreatedAt))
			fmt.Fprintf(out, "Video:       %s\n", content.MediaURL(p.VideoURL))
			fmt.Fprintf(out, "Thumbnail:   %s\n", orDash(thumbnail))
			return nil
		},
	}
}

func (a *App) projectsCreateCommand() *cobra.Command {
	var (
		meta          models.ProjectMetadata
		videoPath     string
		thumbnailPath string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload a video and create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.signIn(ctx); err != nil {
				return err
			}

			video, videoCloser, err := utils.OpenMediaFile(videoPath, models.MediaVideo)
			if err != nil {
				return err
			}
			defer videoCloser.Close()

			var thumbnail *models.MediaFile
			if thumbnailPath != "" {
				thumb, thumbCloser, err := utils.OpenMediaFile(thumbnailPath, models.MediaThumbnail)
				if err != nil {
					return err
				}
				defer thumbCloser.Close()
				thumbnail = &thumb
			}

			created, err := a.services.AdminService.CreateProject(ctx, meta, video, thumbnail)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Project %q created with id %s\n", created.Title, created.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&meta.Title, "title", "t", "", "project title")
	f.StringVarP(&meta.Description, "description", "d", "", "project description")
	f.StringVar(&meta.Category, "category", models.DefaultProjectCategory, "project category")
	f.StringVar(&videoPath, "video", "", "path to the video file (video/*, up to 10MB)")
	f.StringVar(&thumbnailPath, "thumbnail", "", "path to the thumbnail image (image/*, up to 5MB)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("video")

	return cmd
}

func (a *App) projectsUpdateCommand() *cobra.Command {
	var meta models.ProjectMetadata

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title, description or category of a project",
		Long:  "Change project metadata. Fields without a flag keep their current value. Media cannot be replaced.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.signIn(ctx); err != nil {
				return err
			}

			current, err := a.services.ContentService.GetProject(ctx, args[0])
			if err != nil {
				return err
			}

			f := cmd.Flags()
			next := models.ProjectMetadata{
				Title:       current.Title,
				Description: current.Description,
				Category:    current.Category,
			}
			if f.Changed("title") {
				next.Title = meta.Title
			}
			if f.Changed("description") {
				next.Description = meta.Description
			}
			if f.Changed("category") {
				next.Category = meta.Category
			}

			if err = a.services.AdminService.UpdateProject(ctx, args[0], next); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Project %s updated\n", args[0])
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&meta.Title, "title", "t", "", "new title")
	f.StringVarP(&meta.Description, "description", "d", "", "new description")
	f.StringVar(&meta.Category, "category", "", "new category")

	return cmd
}

func (a *App) projectsDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project with its media",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.signIn(ctx); err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete project %s with its video and thumbnail?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err := a.services.AdminService.DeleteProject(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Project %s deleted\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
