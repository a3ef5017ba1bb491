// Package issue implements scripted issue actions: comment, edit,
// close, reopen and react.
package issue

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
	Number      int
	Title       string
	Body        string
	Emoji       string
	LastComment bool
}

// NewIssueCmd creates the issue command group
func NewIssueCmd(projectDir *string) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "issue",
		Short: "Act on issues of the project's GitHub repository",
	}

	cobraCmd.AddCommand(newCommentCmd(projectDir))
	cobraCmd.AddCommand(newEditCmd(projectDir))
	cobraCmd.AddCommand(newStateCmd(projectDir, "close", "Close an issue", github.IssueStateClosed))
	cobraCmd.AddCommand(newStateCmd(projectDir, "reopen", "Reopen a closed issue", github.IssueStateOpen))
	cobraCmd.AddCommand(newReactCmd(projectDir))

	return cobraCmd
}

func (ic *command) init(ctx context.Context, projectDir string, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid issue number %q", args[0])
	}
	ic.Number = number

	ic.ProjectDir = projectDir
	if err := ic.Init(); err != nil {
		return err
	}
	return ic.InitGitHub(ctx)
}

func newCommentCmd(projectDir *string) *cobra.Command {
	ic := &command{}

	cobraCmd := &cobra.Command{
		Use:          "comment <issue-number>",
		Short:        "Add a comment to an issue",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ctx := cobraCmd.Context()
			if err := ic.init(ctx, *projectDir, args); err != nil {
				return err
			}

			if err := ic.GitHub.CommentOnIssue(ctx, ic.Number, ic.Body); err != nil {
				return err
			}

			fmt.Printf("Comment added to issue #%d\n", ic.Number)
			return nil
		},
	}

	cobraCmd.Flags().StringVarP(&ic.Body, "body", "b", "", "Comment text")
	_ = cobraCmd.MarkFlagRequired("body")

	return cobraCmd
}

func newEditCmd(projectDir *string) *cobra.Command {
	ic := &command{}

	cobraCmd := &cobra.Command{
		Use:          "edit <issue-number>",
		Short:        "Edit the title and body of an issue",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ctx := cobraCmd.Context()
			if err := ic.init(ctx, *projectDir, args); err != nil {
				return err
			}
			return ic.runEdit(ctx)
		},
	}

	cobraCmd.Flags().StringVarP(&ic.Title, "title", "t", "", "New issue title")
	cobraCmd.Flags().StringVarP(&ic.Body, "body", "b", "", "New issue body")

	return cobraCmd
}

func newStateCmd(projectDir *string, use, short, target string) *cobra.Command {
	ic := &command{}

	return &cobra.Command{
		Use:          use + " <issue-number>",
		Short:        short,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ctx := cobraCmd.Context()
			if err := ic.init(ctx, *projectDir, args); err != nil {
				return err
			}
			return ic.runSetState(ctx, target)
		},
	}
}

func newReactCmd(projectDir *string) *cobra.Command {
	ic := &command{}

	cobraCmd := &cobra.Command{
		Use:   "react <issue-number>",
		Short: "Add an emoji reaction to an issue or its latest comment",
		Long: `Add an emoji reaction to an issue, or with --last-comment to the most
recent comment on the issue. The emoji must be one of GitHub's reaction
content values: +1, -1, laugh, confused, heart, hooray, rocket, eyes.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			ctx := cobraCmd.Context()
			if err := ic.init(ctx, *projectDir, args); err != nil {
				return err
			}
			return ic.runReact(ctx)
		},
	}

	cobraCmd.Flags().StringVarP(&ic.Emoji, "emoji", "e", "+1", "Reaction content value")
	cobraCmd.Flags().BoolVar(&ic.LastComment, "last-comment", false, "React to the latest comment instead of the issue")

	return cobraCmd
}

func (ic *command) runEdit(ctx context.Context) error {
	if ic.Title == "" && ic.Body == "" {
		return fmt.Errorf("nothing to edit, pass --title and/or --body")
	}

	// Keep whichever field was not passed on the command line.
	existing, err := ic.GitHub.GetIssue(ctx, ic.Number)
	if err != nil {
		return err
	}
	title := ic.Title
	if title == "" {
		title = existing.Title
	}
	body := ic.Body
	if body == "" {
		body = existing.Body
	}

	if err := ic.GitHub.EditIssue(ctx, ic.Number, title, body); err != nil {
		return err
	}

	fmt.Printf("Issue #%d updated\n", ic.Number)
	return nil
}

// runSetState only patches the issue when it is not already in the
// requested state
func (ic *command) runSetState(ctx context.Context, target string) error {
	existing, err := ic.GitHub.GetIssue(ctx, ic.Number)
	if err != nil {
		return err
	}
	if existing.State == target {
		fmt.Printf("Issue #%d is already %s\n", ic.Number, target)
		return nil
	}

	if err := ic.GitHub.SetIssueState(ctx, ic.Number, target); err != nil {
		return err
	}

	fmt.Printf("Issue #%d is now %s\n", ic.Number, target)
	return nil
}

func (ic *command) runReact(ctx context.Context) error {
	if ic.LastComment {
		comment, err := ic.GitHub.LatestIssueComment(ctx, ic.Number)
		if err != nil {
			return err
		}
		if comment == nil {
			return fmt.Errorf("issue #%d has no comments to react to", ic.Number)
		}
		if err := ic.GitHub.ReactToComment(ctx, comment.ID, ic.Emoji); err != nil {
			return err
		}
		fmt.Printf("Reacted %s to the latest comment on issue #%d\n", ic.Emoji, ic.Number)
		return nil
	}

	if err := ic.GitHub.ReactToIssue(ctx, ic.Number, ic.Emoji); err != nil {
		return err
	}
	fmt.Printf("Reacted %s to issue #%d\n", ic.Emoji, ic.Number)
	return nil
}
