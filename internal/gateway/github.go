// Package gateway provides a gateway to the GitHub REST API,
// abstracting away request construction, transport and response decoding.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/naka-gawa/github-activity/internal/config"
	"github.com/naka-gawa/github-activity/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
// BuildRequest performs no I/O; each Fetch method sends exactly one request.
type Fetcher interface {
	BuildRequest(action domain.Action, opts domain.CommandOptions) (*http.Request, error)
	FetchEvents(ctx context.Context, req *http.Request) ([]domain.ActivityEvent, error)
	FetchProfile(ctx context.Context, req *http.Request) (domain.ProfileRecord, error)
	FetchRepos(ctx context.Context, req *http.Request) ([]domain.RepoSummary, error)
	FetchIssues(ctx context.Context, req *http.Request) ([]domain.IssueSummary, error)
	FetchMarkdown(ctx context.Context, req *http.Request) (string, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(cfg *config.Config, logger *log.Logger) (Fetcher, error) {
	baseURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API URL: %w", err)
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}
	restClient := github.NewClient(httpClient)
	restClient.BaseURL = baseURL
	restClient.UserAgent = cfg.UserAgent
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// BuildRequest validates the options the action needs and builds its request.
// It returns a nil request and nil error for an action it does not know.
func (g *GitHubGateway) BuildRequest(action domain.Action, opts domain.CommandOptions) (*http.Request, error) {
	if _, err := domain.ParseAction(string(action)); err != nil {
		return nil, nil
	}
	if err := opts.Validate(action); err != nil {
		return nil, err
	}

	var (
		req *http.Request
		err error
	)
	switch action {
	case domain.ActionActivity:
		req, err = g.restClient.NewRequest(http.MethodGet, fmt.Sprintf("users/%s/events", url.PathEscape(opts.Username)), nil)
	case domain.ActionProfile:
		req, err = g.restClient.NewRequest(http.MethodGet, "user", nil)
		if err == nil {
			// Sets "Authorization: Bearer <token>".
			(&oauth2.Token{AccessToken: opts.Token}).SetAuthHeader(req)
		}
	case domain.ActionListRepo:
		req, err = g.restClient.NewRequest(http.MethodGet, fmt.Sprintf("users/%s/repos", url.PathEscape(opts.Username)), nil)
	case domain.ActionListIssues:
		u := fmt.Sprintf("repos/%s/%s/issues?per_page=%d", url.PathEscape(opts.Username), url.PathEscape(opts.RepoName), *opts.Page)
		req, err = g.restClient.NewRequest(http.MethodGet, u, nil)
	case domain.ActionMarkdownMode:
		req, err = g.restClient.NewRequest(http.MethodPost, "markdown/raw", nil)
		if err == nil {
			setPlainTextBody(req, opts.Body)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", action, err)
	}
	return req, nil
}

// setPlainTextBody attaches body verbatim. NewRequest would JSON-encode it.
func setPlainTextBody(req *http.Request, body string) {
	req.Body = io.NopCloser(strings.NewReader(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(body)), nil
	}
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "text/plain")
}

func (g *GitHubGateway) FetchEvents(ctx context.Context, req *http.Request) ([]domain.ActivityEvent, error) {
	var events []*github.Event
	if err := g.do(ctx, req, "events", &events); err != nil {
		return nil, err
	}
	g.logger.Printf("Received %d events.\n", len(events))
	return ProjectEvents(events)
}

func (g *GitHubGateway) FetchProfile(ctx context.Context, req *http.Request) (domain.ProfileRecord, error) {
	var profile ProfileResponse
	if err := g.do(ctx, req, "profile", &profile); err != nil {
		return domain.ProfileRecord{}, err
	}
	g.logger.Printf("Received profile for %s.\n", profile.GetLogin())
	return ProjectProfile(&profile)
}

func (g *GitHubGateway) FetchRepos(ctx context.Context, req *http.Request) ([]domain.RepoSummary, error) {
	var repos []*github.Repository
	if err := g.do(ctx, req, "repos", &repos); err != nil {
		return nil, err
	}
	g.logger.Printf("Received %d repositories.\n", len(repos))
	return ProjectRepos(repos)
}

func (g *GitHubGateway) FetchIssues(ctx context.Context, req *http.Request) ([]domain.IssueSummary, error) {
	var issues []*github.Issue
	if err := g.do(ctx, req, "issues", &issues); err != nil {
		return nil, err
	}
	g.logger.Printf("Received %d issues.\n", len(issues))
	return ProjectIssues(issues)
}

// FetchMarkdown returns the rendered HTML exactly as the API sent it.
func (g *GitHubGateway) FetchMarkdown(ctx context.Context, req *http.Request) (string, error) {
	var buf bytes.Buffer
	// go-github copies the raw body into an io.Writer instead of decoding JSON.
	if err := g.do(ctx, req, "markdown", &buf); err != nil {
		return "", err
	}
	g.logger.Printf("Received %d bytes of rendered markdown.\n", buf.Len())
	return buf.String(), nil
}

func (g *GitHubGateway) do(ctx context.Context, req *http.Request, resource string, v any) error {
	g.logger.Printf("Requesting %s %s\n", req.Method, req.URL.Redacted())
	resp, err := g.restClient.Do(ctx, req, v)
	if err != nil {
		return wrapError(resp, err, resource)
	}
	g.logger.Printf("Completed with status %d.\n", resp.StatusCode)
	return nil
}
