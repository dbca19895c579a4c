package gateway

import (
	"encoding/json"

	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/github-activity/internal/domain"
)

// ProfileResponse is the body of GET /user. created_at is kept as the raw
// string so the date formatter sees exactly what the server sent.
type ProfileResponse struct {
	github.User
	CreatedAt *string `json:"created_at,omitempty"`
}

// ProjectEvents converts API events into activity events, preserving order.
func ProjectEvents(events []*github.Event) ([]domain.ActivityEvent, error) {
	out := make([]domain.ActivityEvent, 0, len(events))
	for i, ev := range events {
		if ev == nil || ev.Type == nil {
			return nil, missingField("events", "type", i)
		}
		if ev.Repo == nil || ev.Repo.Name == nil {
			return nil, missingField("events", "repo.name", i)
		}
		var payload map[string]any
		if ev.RawPayload != nil {
			if err := json.Unmarshal(*ev.RawPayload, &payload); err != nil {
				return nil, &domain.MalformedResponseError{Resource: "events", Field: "payload", Index: i, Err: err}
			}
		}
		out = append(out, domain.ActivityEvent{
			Type:     ev.GetType(),
			RepoName: ev.Repo.GetName(),
			Payload:  payload,
		})
	}
	return out, nil
}

// ProjectProfile flattens the authenticated user. Nullable text fields become empty.
func ProjectProfile(p *ProfileResponse) (domain.ProfileRecord, error) {
	if p.Login == nil {
		return domain.ProfileRecord{}, missingField("profile", "login", -1)
	}
	if p.CreatedAt == nil {
		return domain.ProfileRecord{}, missingField("profile", "created_at", -1)
	}
	created, err := domain.FormatDate(*p.CreatedAt)
	if err != nil {
		return domain.ProfileRecord{}, err
	}
	return domain.ProfileRecord{
		Username:   p.GetLogin(),
		Name:       p.GetName(),
		Bio:        p.GetBio(),
		URL:        p.GetHTMLURL(),
		Company:    p.GetCompany(),
		ReposURL:   p.GetReposURL(),
		TotalRepos: p.GetPublicRepos(),
		Email:      p.GetEmail(),
		Followers:  p.GetFollowers(),
		Followings: p.GetFollowing(),
		Created:    created,
	}, nil
}

// ProjectRepos maps each repository to its name and browsable URL.
func ProjectRepos(repos []*github.Repository) ([]domain.RepoSummary, error) {
	out := make([]domain.RepoSummary, 0, len(repos))
	for i, r := range repos {
		switch {
		case r == nil || r.Name == nil:
			return nil, missingField("repos", "name", i)
		case r.HTMLURL == nil:
			return nil, missingField("repos", "html_url", i)
		}
		out = append(out, domain.RepoSummary{Name: r.GetName(), URL: r.GetHTMLURL()})
	}
	return out, nil
}

// ProjectIssues maps each issue to its displayed fields. A null body is allowed.
func ProjectIssues(issues []*github.Issue) ([]domain.IssueSummary, error) {
	out := make([]domain.IssueSummary, 0, len(issues))
	for i, is := range issues {
		switch {
		case is == nil || is.Title == nil:
			return nil, missingField("issues", "title", i)
		case is.HTMLURL == nil:
			return nil, missingField("issues", "html_url", i)
		case is.Number == nil:
			return nil, missingField("issues", "number", i)
		case is.RepositoryURL == nil:
			return nil, missingField("issues", "repository_url", i)
		case is.State == nil:
			return nil, missingField("issues", "state", i)
		}
		out = append(out, domain.IssueSummary{
			Title:      is.GetTitle(),
			URL:        is.GetHTMLURL(),
			Number:     is.GetNumber(),
			Repository: is.GetRepositoryURL(),
			Status:     is.GetState(),
			Body:       is.GetBody(),
		})
	}
	return out, nil
}

func missingField(resource, field string, index int) error {
	return &domain.MalformedResponseError{Resource: resource, Field: field, Index: index}
}
