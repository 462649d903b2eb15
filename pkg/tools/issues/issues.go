// Package issues implements the Jira issue-tracking tools. Without
// credentials the read tools serve sample data and issue creation fabricates
// a local reference, so the workshop flows work against an empty .env.
package issues

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
	"github.com/h-ess/concierge-toolkit/pkg/providers/jira"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

// Service wraps the Jira client.
type Service struct {
	api *jira.Client
}

// NewService builds the issue tools service.
func NewService(api *jira.Client) *Service {
	return &Service{api: api}
}

// ListProjects returns the projects visible to the configured account.
func (s *Service) ListProjects(ctx context.Context, _ ListProjectsArgs) (ListProjectsResponse, error) {
	var projects []jira.Project
	if s.api.Configured() {
		var err error
		projects, err = s.api.ListProjects(ctx)
		if err != nil {
			logging.Error("issues: list projects", "err", err)
			return ListProjectsResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("issues: no Jira credentials configured, serving sample projects")
		projects = jira.SampleProjects()
	}
	return ListProjectsResponse{
		Success:  true,
		Projects: projects,
		Display:  FormatProjects(projects),
	}, nil
}

// ListIssueTypes returns the issue types available in a project.
func (s *Service) ListIssueTypes(ctx context.Context, args ListIssueTypesArgs) (ListIssueTypesResponse, error) {
	if args.ProjectKey == "" {
		return ListIssueTypesResponse{Success: false, Error: "missing_project_key"},
			toolkit.NewError("invalid_arguments", "projectKey is required")
	}

	var types []jira.IssueType
	if s.api.Configured() {
		var err error
		types, err = s.api.ListIssueTypes(ctx, args.ProjectKey)
		if err != nil {
			logging.Error("issues: list issue types", "project", args.ProjectKey, "err", err)
			return ListIssueTypesResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("issues: no Jira credentials configured, serving sample issue types")
		types = jira.SampleIssueTypes()
	}
	return ListIssueTypesResponse{
		Success:    true,
		IssueTypes: types,
		Display:    FormatIssueTypes(args.ProjectKey, types),
	}, nil
}

// CreateIssue files an issue. Without credentials a local reference is
// fabricated so the conversation can continue.
func (s *Service) CreateIssue(ctx context.Context, args CreateIssueArgs) (CreateIssueResponse, error) {
	if args.ProjectKey == "" || args.IssueType == "" || args.Summary == "" {
		return CreateIssueResponse{Success: false, Error: "missing_fields"},
			toolkit.NewError("invalid_arguments", "projectKey, issueType and summary are required")
	}

	var issue jira.CreatedIssue
	if s.api.Configured() {
		var err error
		issue, err = s.api.CreateIssue(ctx, args.ProjectKey, args.IssueType, args.Summary, args.Description, args.Priority)
		if err != nil {
			logging.Error("issues: create issue", "project", args.ProjectKey, "err", err)
			return CreateIssueResponse{Success: false, Error: "provider_error"},
				toolkit.NewError("provider_error", err.Error())
		}
	} else {
		logging.Warn("issues: no Jira credentials configured, fabricating local issue")
		issue = jira.CreatedIssue{
			ID:  fmt.Sprintf("%d", 10000+rand.Intn(90000)),
			Key: fmt.Sprintf("%s-%d", args.ProjectKey, 100+rand.Intn(900)),
		}
	}

	logging.Info("issues: issue created", "key", issue.Key)
	return CreateIssueResponse{
		Success: true,
		Issue:   &issue,
		Display: FormatCreatedIssue(issue, args.Summary),
	}, nil
}
