// Package pr implements scripted pull request actions: approve,
// request-changes, comment, merge and reviews.
package pr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
	"github.com/alan/verpush/internal/github"
)

type command struct {
	commands.BaseCommand
	Number int
	Body   string
}

// NewPRCmd creates the pr command group
func NewPRCmd(projectDir *string) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "pr",
		Short: "Act on pull requests of the project's GitHub repository",
	}

	cobraCmd.AddCommand(newReviewCmd(projectDir, "approve", "Approve a pull request", github.ReviewApprove))
	cobraCmd.AddCommand(newReviewCmd(projectDir, "request-changes", "Request changes on a pull request", github.ReviewRequestChanges))
	cobraCmd.AddCommand(newReviewCmd(projectDir, "comment", "Submit a review comment on a pull request", github.ReviewComment))
	cobraCmd.AddCommand(newMergeCmd(projectDir))
	cobraCmd.AddCommand(newReviewsCmd(projectDir))

	return cobraCmd
}

func (pc *command) init(ctx context.Context, projectDir string, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid PR number %q", args[0])
	}
	pc.Number = number

	pc.ProjectDir = projectDir
	if err := pc.Init(); err != nil {
		return err
	}
	return pc.InitGitHub(ctx)
}

func newReviewCmd(projectDir *string, use, short, event string) *cobra.Command {
	pc := &command{}

	cobraCmd := &cobra.Command{
		Use:          use + " <pr-number>",
		Short:        short,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ctx := cobraCmd.Context()
			if err := pc.init(ctx, *projectDir, args); err != nil {
				return err
			}

			if err := pc.GitHub.SubmitReview(ctx, pc.Number, event, pc.Body); err != nil {
				return err
			}

			fmt.Printf("%s sent for PR #%d\n", event, pc.Number)
			return nil
		},
	}

	cobraCmd.Flags().StringVarP(&pc.Body, "body", "b", "", "Review comment text")

	return cobraCmd
}

func newMergeCmd(projectDir *string) *cobra.Command {
	pc := &command{}

	return &cobra.Command{
		Use:   "merge <pr-number>",
		Short: "Merge a pull request",
		Long: `Merge a pull request using the repository's default merge method,
equivalent to the merge button in the GitHub UI.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ctx := cobraCmd.Context()
			if err := pc.init(ctx, *projectDir, args); err != nil {
				return err
			}

			if err := pc.GitHub.MergePR(ctx, pc.Number); err != nil {
				return err
			}

			fmt.Printf("Merged PR #%d\n", pc.Number)
			return nil
		},
	}
}

func newReviewsCmd(projectDir *string) *cobra.Command {
	pc := &command{}

	return &cobra.Command{
		Use:          "reviews <pr-number>",
		Short:        "Show the submitted reviews of a pull request",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ctx := cobraCmd.Context()
			if err := pc.init(ctx, *projectDir, args); err != nil {
				return err
			}

			reviews, err := pc.GitHub.ListReviews(ctx, pc.Number)
			if err != nil {
				return err
			}

			if len(reviews) == 0 {
				fmt.Println("No reviews.")
				return nil
			}

			for _, review := range reviews {
				if review.Body != "" {
					fmt.Printf("%s: %s (%s)\n", review.Author, review.State, review.Body)
				} else {
					fmt.Printf("%s: %s\n", review.Author, review.State)
				}
			}
			return nil
		},
	}
}
