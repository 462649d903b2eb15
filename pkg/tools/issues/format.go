package issues

import (
	"fmt"
	"strings"

	"github.com/h-ess/concierge-toolkit/pkg/providers/jira"
)

// FormatProjects renders a project listing.
func FormatProjects(projects []jira.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d project(s):\n", len(projects))
	for i, p := range projects {
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, p.Key, p.Name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatIssueTypes renders the issue types of one project.
func FormatIssueTypes(projectKey string, types []jira.IssueType) string {
	if len(types) == 0 {
		return fmt.Sprintf("No issue types found for project %s.", projectKey)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Issue types in %s:\n", projectKey)
	for i, t := range types {
		fmt.Fprintf(&sb, "%d. %s", i+1, t.Name)
		if t.Description != "" {
			fmt.Fprintf(&sb, " — %s", t.Description)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatCreatedIssue renders the created-issue confirmation.
func FormatCreatedIssue(issue jira.CreatedIssue, summary string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Issue %s created: %s", issue.Key, summary)
	if issue.URL != "" {
		fmt.Fprintf(&sb, "\n%s", issue.URL)
	}
	return sb.String()
}
