package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-activity/internal/config"
	"github.com/naka-gawa/github-activity/internal/domain"
	"github.com/naka-gawa/github-activity/internal/gateway"
	"github.com/naka-gawa/github-activity/internal/usecase"
)

func runAction(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	// The action and its options are checked before the environment is consulted.
	action, err := domain.ParseAction(args[0])
	if err != nil {
		return err
	}
	if err := opts.Validate(action); err != nil {
		return err
	}

	outputFlag, _ := cmd.Flags().GetString("output")
	format, err := usecase.ParseOutputFormat(outputFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Printf("Using API at %s\n", cfg.APIURL)

	// Inject dependencies and run the main business logic.
	githubGateway, err := gateway.NewGitHubGateway(cfg, logger)
	if err != nil {
		return err
	}
	dispatcher := usecase.NewDispatcher(githubGateway, usecase.NewRenderer(format), logger)

	lines, err := dispatcher.Execute(cmd.Context(), string(action), opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	return nil
}

// optionsFromFlags copies flag values into CommandOptions. Page stays nil unless given.
func optionsFromFlags(cmd *cobra.Command) (domain.CommandOptions, error) {
	flags := cmd.Flags()
	username, _ := flags.GetString("username")
	token, _ := flags.GetString("token")
	repoName, _ := flags.GetString("reponame")
	body, _ := flags.GetString("body")

	opts := domain.CommandOptions{
		Username: username,
		Token:    token,
		RepoName: repoName,
		Body:     body,
	}
	if flags.Changed("page") {
		page, err := flags.GetInt("page")
		if err != nil {
			return domain.CommandOptions{}, err
		}
		opts.Page = &page
	}
	return opts, nil
}
