// Package jira wraps the handful of Jira REST calls the issue-tracking use
// case needs: list projects, list issue types, create an issue. Requests use
// basic auth (account email + API token).
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Project is a Jira project reference.
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// IssueType is an issue type available in a project.
type IssueType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreatedIssue is the reference returned after creating an issue.
type CreatedIssue struct {
	ID  string `json:"id"`
	Key string `json:"key"`
	URL string `json:"url,omitempty"`
}

// Client calls the Jira REST API v2.
type Client struct {
	baseURL  string
	email    string
	apiToken string
	httpc    *http.Client
}

// NewClient returns a client for the given Jira site.
func NewClient(baseURL, email, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		email:    email,
		apiToken: apiToken,
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the client has a site URL and credentials.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.email != "" && c.apiToken != ""
}

// ListProjects returns all projects visible to the authenticated account.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	body, err := c.get(ctx, "/rest/api/2/project")
	if err != nil {
		return nil, err
	}
	var projects []Project
	for _, item := range gjson.ParseBytes(body).Array() {
		projects = append(projects, Project{
			ID:   item.Get("id").String(),
			Key:  item.Get("key").String(),
			Name: item.Get("name").String(),
		})
	}
	return projects, nil
}

// ListIssueTypes returns the issue types available in the given project.
func (c *Client) ListIssueTypes(ctx context.Context, projectKey string) ([]IssueType, error) {
	body, err := c.get(ctx, "/rest/api/2/issue/createmeta?projectKeys="+projectKey)
	if err != nil {
		return nil, err
	}
	var types []IssueType
	for _, item := range gjson.GetBytes(body, "projects.0.issuetypes").Array() {
		types = append(types, IssueType{
			ID:          item.Get("id").String(),
			Name:        item.Get("name").String(),
			Description: item.Get("description").String(),
		})
	}
	return types, nil
}

// CreateIssue creates an issue and returns its reference. Priority is
// optional.
func (c *Client) CreateIssue(ctx context.Context, projectKey, issueType, summary, description, priority string) (CreatedIssue, error) {
	fields := map[string]interface{}{
		"project":   map[string]string{"key": projectKey},
		"issuetype": map[string]string{"name": issueType},
		"summary":   summary,
	}
	if description != "" {
		fields["description"] = description
	}
	if priority != "" {
		fields["priority"] = map[string]string{"name": priority}
	}

	payload, err := json.Marshal(map[string]interface{}{"fields": fields})
	if err != nil {
		return CreatedIssue{}, fmt.Errorf("marshal issue: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/api/2/issue", bytes.NewReader(payload))
	if err != nil {
		return CreatedIssue{}, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return CreatedIssue{}, fmt.Errorf("jira create issue request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return CreatedIssue{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return CreatedIssue{}, fmt.Errorf("jira create issue returned %d: %s", resp.StatusCode, jiraErrors(body))
	}

	key := gjson.GetBytes(body, "key").String()
	return CreatedIssue{
		ID:  gjson.GetBytes(body, "id").String(),
		Key: key,
		URL: fmt.Sprintf("%s/browse/%s", c.baseURL, key),
	}, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jira request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jira returned %d: %s", resp.StatusCode, jiraErrors(body))
	}
	return body, nil
}

func jiraErrors(body []byte) string {
	var msgs []string
	for _, m := range gjson.GetBytes(body, "errorMessages").Array() {
		msgs = append(msgs, m.String())
	}
	if len(msgs) == 0 {
		return "unexpected response"
	}
	return strings.Join(msgs, "; ")
}
