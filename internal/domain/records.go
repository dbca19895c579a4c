package domain

import "strconv"

// ActivityEvent is the part of a public activity event the CLI reads.
// Payload keeps the decoded JSON object; its shape depends on Type.
type ActivityEvent struct {
	Type     string
	RepoName string
	Payload  map[string]any
}

// ProfileRecord is the flattened view of the authenticated user's profile.
type ProfileRecord struct {
	Username   string
	Name       string
	Bio        string
	URL        string
	Company    string
	ReposURL   string
	TotalRepos int
	Email      string
	Followers  int
	Followings int
	Created    string
}

// ProfileField is one labelled line of a profile.
type ProfileField struct {
	Key   string
	Value string
}

// Fields lists the profile in its fixed display order.
func (p ProfileRecord) Fields() []ProfileField {
	return []ProfileField{
		{"username", p.Username},
		{"name", p.Name},
		{"bio", p.Bio},
		{"url", p.URL},
		{"company", p.Company},
		{"repos_url", p.ReposURL},
		{"total_repos", strconv.Itoa(p.TotalRepos)},
		{"email", p.Email},
		{"followers", strconv.Itoa(p.Followers)},
		{"followings", strconv.Itoa(p.Followings)},
		{"created", p.Created},
	}
}

// RepoSummary holds the name and browsable URL of one repository.
type RepoSummary struct {
	Name string
	URL  string
}

// IssueSummary holds the displayed fields of one issue.
type IssueSummary struct {
	Title      string
	URL        string
	Number     int
	Repository string
	Status     string
	Body       string
}
