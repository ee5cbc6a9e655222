package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/rexora-cms/internal/utils"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/spf13/cobra"
)

func (a *App) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and replace the site settings document",
	}

	cmd.AddCommand(
		a.settingsGetCommand(),
		a.settingsSaveCommand(),
		a.settingsLogoCommand(),
	)

	return cmd
}

func (a *App) settingsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the settings document as JSON",
		Long:  "Print the settings document as JSON. The output can be edited and passed to `settings save --file`.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), a.services.ContentService.GetSiteSettings(cmd.Context()))
		},
	}
}

func (a *App) settingsSaveCommand() *cobra.Command {
	var (
		docPath  string
		logoPath string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Replace the settings document",
		Long: "Replace the whole settings document with the JSON file given by --file.\n" +
			"With --logo the image is uploaded first and its reference is stored in the document.\n" +
			"The save fails when someone else changed the settings since they were read.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			doc, err := readSettingsFile(docPath)
			if err != nil {
				return err
			}

			if err = a.signIn(ctx); err != nil {
				return err
			}
			current, err := a.services.AdminService.CurrentSiteSettings(ctx)
			if err != nil {
				return fmt.Errorf("cannot save without the current settings version: %w", err)
			}
			doc.Version = current.Version

			var logo *models.MediaFile
			if logoPath != "" {
				file, closer, err := utils.OpenMediaFile(logoPath, models.MediaLogo)
				if err != nil {
					return err
				}
				defer closer.Close()
				logo = &file
			}

			saved, err := a.services.AdminService.SaveSiteSettings(ctx, doc, logo)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Site settings saved (version %d)\n", saved.Version)
			return nil
		},
	}

	cmd.Flags().StringVarP(&docPath, "file", "f", "", "JSON file with the full settings document")
	cmd.Flags().StringVar(&logoPath, "logo", "", "path to a new logo image (image/*, up to 2MB)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *App) settingsLogoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logo <path>",
		Short: "Upload a new logo and save it into the current settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.signIn(ctx); err != nil {
				return err
			}

			file, closer, err := utils.OpenMediaFile(args[0], models.MediaLogo)
			if err != nil {
				return err
			}
			defer closer.Close()

			current, err := a.services.AdminService.CurrentSiteSettings(ctx)
			if err != nil {
				return fmt.Errorf("cannot save the logo without the current settings: %w", err)
			}
			saved, err := a.services.AdminService.SaveSiteSettings(ctx, current, &file)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logo saved: %s\n", a.services.ContentService.MediaURL(saved.Logo))
			return nil
		},
	}
}

func readSettingsFile(path string) (models.SiteSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("error reading settings file: %w", err)
	}

	var doc models.SiteSettings
	if err = json.Unmarshal(data, &doc); err != nil {
		return models.SiteSettings{}, fmt.Errorf("error parsing settings file %s: %w", path, err)
	}
	return doc, nil
}
