// Package domain contains the core data structures and domain logic for the application.
package domain

// Action names one of the subcommands the CLI understands.
type Action string

const (
	ActionActivity     Action = "activity"
	ActionProfile      Action = "profile"
	ActionListRepo     Action = "list-repo"
	ActionListIssues   Action = "list-issues"
	ActionMarkdownMode Action = "markdown-mode"
)

// Actions lists every known action in help-text order.
var Actions = []Action{
	ActionActivity,
	ActionProfile,
	ActionListRepo,
	ActionListIssues,
	ActionMarkdownMode,
}

// ParseAction resolves a subcommand name. The match is case-sensitive.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", &UnknownCommandError{Name: name}
}

// CommandOptions holds the flag values supplied for one invocation.
// Empty strings and a nil Page mean the option was not given.
type CommandOptions struct {
	Username string
	Token    string
	RepoName string
	Page     *int
	Body     string
}

// Validate checks that every option required by the action is present.
// Checks run in flag order so the first missing flag is the one reported.
func (o CommandOptions) Validate(a Action) error {
	switch a {
	case ActionActivity, ActionListRepo:
		return requireOption("username", o.Username)
	case ActionProfile:
		return requireOption("token", o.Token)
	case ActionListIssues:
		if err := requireOption("username", o.Username); err != nil {
			return err
		}
		if err := requireOption("reponame", o.RepoName); err != nil {
			return err
		}
		if o.Page == nil {
			return &MissingOptionError{Name: "page"}
		}
		if *o.Page <= 0 {
			return &InvalidOptionError{Name: "page", Reason: "must be a positive integer"}
		}
		return nil
	case ActionMarkdownMode:
		return requireOption("body", o.Body)
	}
	return &UnknownCommandError{Name: string(a)}
}

func requireOption(name, value string) error {
	if value == "" {
		return &MissingOptionError{Name: name}
	}
	return nil
}
