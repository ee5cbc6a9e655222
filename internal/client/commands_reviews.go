package client

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/rexora-cms/models"
	"github.com/spf13/cobra"
)

var errNothingToUpdate = errors.New("nothing to update, pass --name, --text or --stars")

func (a *App) reviewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reviews",
		Aliases: []string{"review"},
		Short:   "List and manage client reviews",
	}

	cmd.AddCommand(
		a.reviewsListCommand(),
		a.reviewsCreateCommand(),
		a.reviewsUpdateCommand(),
		a.reviewsDeleteCommand(),
	)

	return cmd
}

func (a *App) reviewsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reviews, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reviews := a.services.ContentService.ListReviews(cmd.Context())
			if len(reviews) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reviews")
				return nil
			}

			rows := make([][]string, 0, len(reviews))
			for _, r := range reviews {
				rows = append(rows, []string{r.ID, r.ClientName, strconv.Itoa(r.StarRating), r.ReviewText})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "CLIENT", "STARS", "REVIEW"}, rows)
		},
	}
}

func (a *App) reviewsCreateCommand() *cobra.Command {
	var in models.ReviewInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.signIn(ctx); err != nil {
				return err
			}

			created, err := a.services.AdminService.CreateReview(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Review created with id %s\n", created.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.ClientName, "name", "", "client name")
	f.StringVar(&in.ReviewText, "text", "", "review text")
	f.IntVar(&in.StarRating, "stars", models.MaxStarRating, "star rating from 1 to 5")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func (a *App) reviewsUpdateCommand() *cobra.Command {
	var in models.ReviewInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change some fields of a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f := cmd.Flags()
			var u models.ReviewUpdate
			if f.Changed("name") {
				u.ClientName = &in.ClientName
			}
			if f.Changed("text") {
				u.ReviewText = &in.ReviewText
			}
			if f.Changed("stars") {
				u.StarRating = &in.StarRating
			}
			if u.IsEmpty() {
				return errNothingToUpdate
			}

			if err := a.signIn(ctx); err != nil {
				return err
			}

			updated, err := a.services.AdminService.UpdateReview(ctx, args[0], u)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Review %s updated: %s, %d stars\n", updated.ID, updated.ClientName, updated.StarRating)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.ClientName, "name", "", "new client name")
	f.StringVar(&in.ReviewText, "text", "", "new review text")
	f.IntVar(&in.StarRating, "stars", 0, "new star rating from 1 to 5")

	return cmd
}

func (a *App) reviewsDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.signIn(ctx); err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete review %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err := a.services.AdminService.DeleteReview(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Review %s deleted\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
