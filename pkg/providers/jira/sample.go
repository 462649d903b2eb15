package jira

// SampleProjects returns static project data for use when Jira credentials
// are not configured.
func SampleProjects() []Project {
	return []Project{
		{ID: "10000", Key: "WS", Name: "Workshop Sandbox"},
		{ID: "10001", Key: "OPS", Name: "Operations"},
	}
}

// SampleIssueTypes returns static issue types.
func SampleIssueTypes() []IssueType {
	return []IssueType{
		{ID: "1", Name: "Bug", Description: "A problem which impairs or prevents function"},
		{ID: "2", Name: "Task", Description: "A task that needs to be done"},
		{ID: "3", Name: "Story", Description: "A user story"},
	}
}
