package domain

import "fmt"

// Event types with a dedicated description. Anything else falls back to a generic line.
const (
	EventTypePush        = "PushEvent"
	EventTypeIssues      = "IssuesEvent"
	EventTypeWatch       = "WatchEvent"
	EventTypePullRequest = "PullRequestEvent"
	EventTypeCreate      = "CreateEvent"
	EventTypeDelete      = "DeleteEvent"
)

// Describe returns a one-line human-readable description of an activity event.
func Describe(ev ActivityEvent) string {
	repo := ev.RepoName
	switch ev.Type {
	case EventTypePush:
		return fmt.Sprintf("Pushed %d commits to %s", commitCount(ev.Payload), repo)
	case EventTypeIssues:
		return fmt.Sprintf("%s an issue in %s", payloadString(ev.Payload, "action"), repo)
	case EventTypeWatch:
		return fmt.Sprintf("Starred %s", repo)
	case EventTypePullRequest:
		return fmt.Sprintf("%s a pull request in %s", payloadString(ev.Payload, "action"), repo)
	case EventTypeCreate:
		return fmt.Sprintf("Created a %s in %s", payloadString(ev.Payload, "ref_type"), repo)
	case EventTypeDelete:
		return fmt.Sprintf("Deleted a %s in %s", payloadString(ev.Payload, "ref_type"), repo)
	default:
		return fmt.Sprintf("Performed %s in %s", ev.Type, repo)
	}
}

// commitCount prefers the commits array and falls back to the size field,
// which is all the events API returns for some pushes.
func commitCount(payload map[string]any) int {
	if commits, ok := payload["commits"].([]any); ok {
		return len(commits)
	}
	if size, ok := payload["size"].(float64); ok {
		return int(size)
	}
	return 0
}

func payloadString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
