// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/rexora-cms/internal/service"
	"github.com/MKhiriev/rexora-cms/models"
	"github.com/spf13/cobra"
)

func (a *App) loginCommand() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		Long:  "Sign in with the admin account. The password is read from standard input when --password is not given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if creds.Password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				password, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("error reading password: %w", err)
				}
				creds.Password = password
			}
			creds.Email = strings.TrimSpace(creds.Email)

			if err := a.services.SessionService.Login(cmd.Context(), creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", creds.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&creds.Email, "email", "e", "", "admin e-mail")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "admin password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.SessionService.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the saved session is still valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			restored, err := a.services.SessionService.Restore(cmd.Context())
			switch {
			case errors.Is(err, service.ErrNetwork):
				fmt.Fprintf(out, "Server %s is unreachable, the saved session was kept\n", a.cfg.Adapter.ServerURL)
				return err
			case err != nil:
				return err
			case restored:
				fmt.Fprintf(out, "Signed in to %s\n", a.cfg.Adapter.ServerURL)
			default:
				fmt.Fprintf(out, "Not signed in to %s\n", a.cfg.Adapter.ServerURL)
			}

			if version, err := a.services.ContentService.ServerVersion(cmd.Context()); err == nil {
				fmt.Fprintf(out, "Server version: %s\n", version.Version)
			}
			return nil
		},
	}
}
