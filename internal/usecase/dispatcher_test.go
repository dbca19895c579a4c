package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-activity/internal/domain"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) BuildRequest(action domain.Action, opts domain.CommandOptions) (*http.Request, error) {
	args := m.Called(action, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Request), args.Error(1)
}

func (m *mockFetcher) FetchEvents(ctx context.Context, req *http.Request) ([]domain.ActivityEvent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEvent), args.Error(1)
}

func (m *mockFetcher) FetchProfile(ctx context.Context, req *http.Request) (domain.ProfileRecord, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ProfileRecord), args.Error(1)
}

func (m *mockFetcher) FetchRepos(ctx context.Context, req *http.Request) ([]domain.RepoSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RepoSummary), args.Error(1)
}

func (m *mockFetcher) FetchIssues(ctx context.Context, req *http.Request) ([]domain.IssueSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IssueSummary), args.Error(1)
}

func (m *mockFetcher) FetchMarkdown(ctx context.Context, req *http.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newTestDispatcher(fetcher *mockFetcher) *Dispatcher {
	return NewDispatcher(fetcher, NewRenderer(OutputText), log.New(io.Discard, "", 0))
}

// TestDispatcher_Execute uses a table-driven approach to test each action end to end through the mock.
func TestDispatcher_Execute(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://api.github.com/", nil)
	require.NoError(t, err)
	opts := domain.CommandOptions{Username: "octocat"}

	testCases := []struct {
		name     string
		action   string
		arrange  func(m *mockFetcher)
		expected []string
	}{
		{
			name:   "activity",
			action: "activity",
			arrange: func(m *mockFetcher) {
				m.On("FetchEvents", mock.Anything, req).Return([]domain.ActivityEvent{
					{Type: "WatchEvent", RepoName: "octocat/Hello-World"},
					{Type: "IssuesEvent", RepoName: "octocat/Spoon-Knife", Payload: map[string]any{"action": "opened"}},
				}, nil)
			},
			expected: []string{"- Starred octocat/Hello-World", "- opened an issue in octocat/Spoon-Knife"},
		},
		{
			name:   "activity with no events",
			action: "activity",
			arrange: func(m *mockFetcher) {
				m.On("FetchEvents", mock.Anything, req).Return([]domain.ActivityEvent{}, nil)
			},
			expected: []string{},
		},
		{
			name:   "profile",
			action: "profile",
			arrange: func(m *mockFetcher) {
				m.On("FetchProfile", mock.Anything, req).Return(domain.ProfileRecord{
					Username: "octocat", Name: "The Octocat", TotalRepos: 8, Followers: 1, Followings: 2, Created: "25-01-2011",
				}, nil)
			},
			expected: []string{
				"username: octocat", "name: The Octocat", "bio: ", "url: ", "company: ", "repos_url: ",
				"total_repos: 8", "email: ", "followers: 1", "followings: 2", "created: 25-01-2011",
			},
		},
		{
			name:   "list-repo",
			action: "list-repo",
			arrange: func(m *mockFetcher) {
				m.On("FetchRepos", mock.Anything, req).Return([]domain.RepoSummary{
					{Name: "a", URL: "https://github.com/octocat/a"},
					{Name: "b", URL: "https://github.com/octocat/b"},
				}, nil)
			},
			expected: []string{
				"1. Name: a", "    URL: https://github.com/octocat/a", "",
				"2. Name: b", "    URL: https://github.com/octocat/b", "",
			},
		},
		{
			name:   "list-issues",
			action: "list-issues",
			arrange: func(m *mockFetcher) {
				m.On("FetchIssues", mock.Anything, req).Return([]domain.IssueSummary{{
					Title: "Bug", URL: "https://github.com/o/r/issues/3", Number: 3,
					Repository: "https://api.github.com/repos/o/r", Status: "open", Body: "It breaks",
				}}, nil)
			},
			expected: []string{
				"1. Issue: Bug",
				"   Context: It breaks",
				"   URL: https://github.com/o/r/issues/3",
				"   Number: 3",
				"   Repository: https://api.github.com/repos/o/r",
				"   status: open",
				"",
			},
		},
		{
			name:   "markdown-mode",
			action: "markdown-mode",
			arrange: func(m *mockFetcher) {
				m.On("FetchMarkdown", mock.Anything, req).Return("<p>hi</p>\n", nil)
			},
			expected: []string{"<p>hi</p>\n"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("BuildRequest", domain.Action(tc.action), opts).Return(req, nil)
			tc.arrange(fetcher)

			lines, err := newTestDispatcher(fetcher).Execute(context.Background(), tc.action, opts)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, lines)
			fetcher.AssertExpectations(t)
		})
	}
}

func TestDispatcher_ExecuteErrors(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://api.github.com/", nil)
	require.NoError(t, err)

	t.Run("unknown command never touches the gateway", func(t *testing.T) {
		fetcher := new(mockFetcher)
		lines, err := newTestDispatcher(fetcher).Execute(context.Background(), "stars", domain.CommandOptions{})

		var unknown *domain.UnknownCommandError
		require.ErrorAs(t, err, &unknown)
		assert.Nil(t, lines)
		fetcher.AssertNotCalled(t, "BuildRequest", mock.Anything, mock.Anything)
	})

	t.Run("missing option stops before any fetch", func(t *testing.T) {
		fetcher := new(mockFetcher)
		opts := domain.CommandOptions{Username: "u", RepoName: "r"}
		fetcher.On("BuildRequest", domain.ActionListIssues, opts).Return(nil, &domain.MissingOptionError{Name: "page"})

		lines, err := newTestDispatcher(fetcher).Execute(context.Background(), "list-issues", opts)

		assert.EqualError(t, err, "missing required option --page")
		assert.Nil(t, lines)
		fetcher.AssertNotCalled(t, "FetchIssues", mock.Anything, mock.Anything)
	})

	t.Run("http failure yields no lines", func(t *testing.T) {
		fetcher := new(mockFetcher)
		opts := domain.CommandOptions{Username: "ghost"}
		fetcher.On("BuildRequest", domain.ActionListRepo, opts).Return(req, nil)
		fetcher.On("FetchRepos", mock.Anything, req).Return(nil, &domain.HTTPError{Status: 404, Message: "Not Found"})

		lines, err := newTestDispatcher(fetcher).Execute(context.Background(), "list-repo", opts)

		require.Error(t, err)
		assert.Nil(t, lines)
		assert.Equal(t, "Error: 404 - Not Found", FormatError(err))
	})

	t.Run("transport failure", func(t *testing.T) {
		fetcher := new(mockFetcher)
		opts := domain.CommandOptions{Username: "octocat"}
		fetcher.On("BuildRequest", domain.ActionActivity, opts).Return(req, nil)
		fetcher.On("FetchEvents", mock.Anything, req).Return(nil, &domain.TransportError{Err: errors.New("dial tcp: no such host")})

		_, err := newTestDispatcher(fetcher).Execute(context.Background(), "activity", opts)

		assert.Equal(t, "Error: dial tcp: no such host", FormatError(err))
	})
}
