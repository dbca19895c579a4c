// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/naka-gawa/github-activity/internal/domain"
	"github.com/naka-gawa/github-activity/internal/gateway"
)

// Dispatcher is the use case that runs one subcommand.
// It routes the action to the gateway and renders the result as output lines.
type Dispatcher struct {
	fetcher  gateway.Fetcher
	renderer *Renderer
	logger   *log.Logger
}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher(fetcher gateway.Fetcher, renderer *Renderer, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		fetcher:  fetcher,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute validates the subcommand and its options, sends its single request and
// returns the complete output. On error no lines are returned.
func (d *Dispatcher) Execute(ctx context.Context, name string, opts domain.CommandOptions) ([]string, error) {
	action, err := domain.ParseAction(name)
	if err != nil {
		return nil, err
	}
	d.logger.Printf("Usecase: running %s...\n", action)

	req, err := d.fetcher.BuildRequest(action, opts)
	if err != nil {
		return nil, err
	}

	var lines []string
	switch action {
	case domain.ActionActivity:
		events, err := d.fetcher.FetchEvents(ctx, req)
		if err != nil {
			return nil, err
		}
		lines = d.renderer.Activity(events)
	case domain.ActionProfile:
		profile, err := d.fetcher.FetchProfile(ctx, req)
		if err != nil {
			return nil, err
		}
		lines = d.renderer.Profile(profile)
	case domain.ActionListRepo:
		repos, err := d.fetcher.FetchRepos(ctx, req)
		if err != nil {
			return nil, err
		}
		lines = d.renderer.Repos(repos)
	case domain.ActionListIssues:
		issues, err := d.fetcher.FetchIssues(ctx, req)
		if err != nil {
			return nil, err
		}
		lines = d.renderer.Issues(issues)
	case domain.ActionMarkdownMode:
		html, err := d.fetcher.FetchMarkdown(ctx, req)
		if err != nil {
			return nil, err
		}
		lines = []string{html}
	}

	d.logger.Printf("Usecase: %s complete, %d lines.\n", action, len(lines))
	return lines, nil
}
