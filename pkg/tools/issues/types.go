package issues

import "github.com/h-ess/concierge-toolkit/pkg/providers/jira"

// ListProjectsArgs has no filters; the tool lists every visible project.
type ListProjectsArgs struct{}

// ListProjectsResponse carries the visible projects.
type ListProjectsResponse struct {
	Success  bool           `json:"success"`
	Projects []jira.Project `json:"projects,omitempty"`
	Display  string         `json:"display,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// ListIssueTypesArgs identify the project whose issue types to list.
type ListIssueTypesArgs struct {
	ProjectKey string `json:"projectKey" jsonschema:"required,description=Project key, e.g. WS."`
}

// ListIssueTypesResponse carries the available issue types.
type ListIssueTypesResponse struct {
	Success    bool             `json:"success"`
	IssueTypes []jira.IssueType `json:"issueTypes,omitempty"`
	Display    string           `json:"display,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// CreateIssueArgs are the details for the create_issue tool.
type CreateIssueArgs struct {
	ProjectKey  string `json:"projectKey" jsonschema:"required,description=Project key the issue belongs to."`
	IssueType   string `json:"issueType" jsonschema:"required,description=Issue type name, e.g. Bug or Task."`
	Summary     string `json:"summary" jsonschema:"required,description=One-line issue summary."`
	Description string `json:"description,omitempty" jsonschema:"description=Longer issue description."`
	Priority    string `json:"priority,omitempty" jsonschema:"description=Priority name, e.g. High."`
}

// CreateIssueResponse carries the created issue reference.
type CreateIssueResponse struct {
	Success bool               `json:"success"`
	Issue   *jira.CreatedIssue `json:"issue,omitempty"`
	Display string             `json:"display,omitempty"`
	Error   string             `json:"error,omitempty"`
}
