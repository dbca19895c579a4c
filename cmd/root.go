// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-activity/internal/domain"
	"github.com/naka-gawa/github-activity/internal/usecase"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	validArgs := make([]string, 0, len(domain.Actions))
	for _, a := range domain.Actions {
		validArgs = append(validArgs, string(a))
	}

	cmd := &cobra.Command{
		Use:   "github-activity <action>",
		Short: "Show a GitHub user's activity, profile, repositories and issues.",
		Long: `github-activity queries the GitHub REST API and prints the result as text.

Actions:
  activity       recent public events of --username
  profile        the profile of the user owning --token
  list-repo      public repositories of --username
  list-issues    issues of --username/--reponame, --page issues per page
  markdown-mode  render --body as GitHub flavored markdown`,
		Example: `  github-activity activity -u octocat
  github-activity profile -t "$GITHUB_TOKEN"
  github-activity list-issues -u octocat -r Hello-World -p 5`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     validArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runAction,
	}

	// Add a persistent flag for verbose output, available to all commands.
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")

	cmd.Flags().StringP("username", "u", "", "GitHub username")
	cmd.Flags().StringP("token", "t", "", "Personal access token or fine-grained token, used by profile")
	cmd.Flags().StringP("reponame", "r", "", "GitHub repository name")
	cmd.Flags().IntP("page", "p", 0, "Number of issues to fetch per page")
	cmd.Flags().StringP("body", "b", "", "Markdown text to render")
	cmd.Flags().StringP("output", "o", string(usecase.OutputText), "Output format for list actions: text or table")
	return cmd
}

// Execute runs the root command and exits non-zero when an error was printed.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(run(rootCmd, os.Args[1:]))
}

// run executes cmd with args and returns the process exit status.
// Any error is written to the command's error stream as one line.
func run(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), usecase.FormatError(err))
		return 1
	}
	return 0
}
