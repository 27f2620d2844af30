package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryo246912/gh-deploy-checklist/internal/ghurl"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
	"github.com/ryo246912/gh-deploy-checklist/internal/ui"
	"github.com/ryo246912/gh-deploy-checklist/internal/version"
)

func newShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the open deploy checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			snap, err := svc.Snapshot()
			if err != nil {
				return err
			}
			if asJSON {
				out, err := json.MarshalIndent(snap.Issue, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode checklist: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.FormatChecklist(snap.Issue, snap.PRs, snap.Blockers))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded checklist as JSON")
	return cmd
}

func newCreateCmd() *cobra.Command {
	var (
		prs       []string
		blockers  []string
		assumeYes bool
	)
	cmd := &cobra.Command{
		Use:   "create <tag>",
		Short: "Create the deploy checklist issue for a release tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			issue, err := svc.CreateChecklist(args[0], prs, blockers, assumeYes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), issue.HTMLURL)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&prs, "pr", nil, "pull request URL to include (repeatable)")
	cmd.Flags().StringSliceVar(&blockers, "blocker", nil, "deploy blocker issue or pull request URL (repeatable)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "create without asking for confirmation")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [PR_URL]",
		Short: "Check off a pull request on the deploy checklist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			issue, err := svc.VerifyPR(optionalArg(args))
			return printIssue(cmd, issue, err)
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [URL]",
		Short: "Check off a deploy blocker on the deploy checklist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			issue, err := svc.ResolveBlocker(optionalArg(args))
			return printIssue(cmd, issue, err)
		},
	}
}

func newAddCmd() *cobra.Command {
	var prs, blockers []string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add pull requests or deploy blockers to the deploy checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			issue, err := svc.AddItems(prs, blockers)
			return printIssue(cmd, issue, err)
		},
	}
	cmd.Flags().StringSliceVar(&prs, "pr", nil, "pull request URL to add (repeatable)")
	cmd.Flags().StringSliceVar(&blockers, "blocker", nil, "deploy blocker URL to add (repeatable)")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "compare <tag>",
		Short: "Print the compare link between a tag and the previous one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := version.ParseLevel(level)
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			link, err := svc.CompareLink(args[0], lvl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "build", "version level to compare at (major, minor, patch, build)")
	return cmd
}

func newNumberCmd() *cobra.Command {
	var shape string
	cmd := &cobra.Command{
		Use:   "number <URL>",
		Short: "Print the pull request or issue number of a GitHub URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ghurl.ParseShape(shape)
			if err != nil {
				return err
			}
			n, err := ghurl.NumberForShape(args[0], s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "any", "accepted URL shape (pull, issue, any)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func printIssue(cmd *cobra.Command, issue models.Issue, err error) error {
	if err != nil {
		return err
	}
	if issue.HTMLURL != "" {
		fmt.Fprintln(cmd.OutOrStdout(), issue.HTMLURL)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "#%d\n", issue.Number)
	}
	return nil
}
