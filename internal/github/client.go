package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
	graphql "github.com/cli/shurcooL-graphql"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

// IssueState mirrors the GraphQL IssueState enum; the type name is used as
// the variable type in generated queries.
type IssueState string

const (
	IssueStateOpen   IssueState = "OPEN"
	IssueStateClosed IssueState = "CLOSED"
)

// Client wraps GitHub API clients
type Client struct {
	rest api.RESTClient
	gql  api.GraphQLClient
}

// NewClient creates clients authenticated the same way as gh
func NewClient() (*Client, error) {
	return NewClientWithOptions(api.ClientOptions{})
}

// NewClientWithOptions creates clients for a specific host, token or transport
func NewClientWithOptions(opts api.ClientOptions) (*Client, error) {
	restClient, err := api.NewRESTClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	gqlClient, err := api.NewGraphQLClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	return &Client{
		rest: *restClient,
		gql:  *gqlClient,
	}, nil
}

// GetCurrentUserLogin fetches current user's login
func (c *Client) GetCurrentUserLogin() (string, error) {
	var user models.User
	if err := c.rest.Get("user", &user); err != nil {
		return "", fmt.Errorf("failed to fetch current user: %w", err)
	}
	return user.Login, nil
}

// ListIssuesByLabel fetches issues carrying label in the given state using GraphQL
func (c *Client) ListIssuesByLabel(owner, repo, label, state string) ([]models.Issue, error) {
	var q struct {
		Repository struct {
			Issues struct {
				Nodes []struct {
					Number int
					Title  string
					URL    string `graphql:"url"`
					Body   string
					State  string
					Labels struct {
						Nodes []struct {
							Name string
						}
					} `graphql:"labels(first: 20)"`
				}
			} `graphql:"issues(labels: $labels, states: $states, first: $first)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner":  graphql.String(owner),
		"name":   graphql.String(repo),
		"labels": []graphql.String{graphql.String(label)},
		"states": []IssueState{IssueState(strings.ToUpper(state))},
		"first":  graphql.Int(100),
	}

	if err := c.gql.Query("ChecklistIssues", &q, variables); err != nil {
		return nil, fmt.Errorf("failed to fetch issues labeled %q: %w", label, err)
	}

	issues := make([]models.Issue, 0, len(q.Repository.Issues.Nodes))
	for _, node := range q.Repository.Issues.Nodes {
		labels := make([]models.Label, 0, len(node.Labels.Nodes))
		for _, l := range node.Labels.Nodes {
			labels = append(labels, models.Label{Name: l.Name})
		}
		issues = append(issues, models.Issue{
			Number:  node.Number,
			Title:   node.Title,
			HTMLURL: node.URL,
			Body:    node.Body,
			State:   node.State,
			Labels:  labels,
		})
	}
	return issues, nil
}

// ListTags fetches tags in the order the API returns them
func (c *Client) ListTags(owner, repo string) ([]models.Tag, error) {
	path := fmt.Sprintf("repos/%s/%s/tags?per_page=100", owner, repo)
	var tags []models.Tag
	if err := c.rest.Get(path, &tags); err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}
	return tags, nil
}

// CreateIssue opens a new issue
func (c *Client) CreateIssue(owner, repo string, req models.IssueRequest) (models.Issue, error) {
	path := fmt.Sprintf("repos/%s/%s/issues", owner, repo)

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return models.Issue{}, fmt.Errorf("failed to encode request body: %w", err)
	}

	var issue models.Issue
	if err := c.rest.Post(path, bytes.NewReader(jsonBody), &issue); err != nil {
		return models.Issue{}, fmt.Errorf("failed to create issue: %w", err)
	}
	return issue, nil
}

// UpdateIssueBody replaces the body of an existing issue
func (c *Client) UpdateIssueBody(owner, repo string, number int, body string) (models.Issue, error) {
	path := fmt.Sprintf("repos/%s/%s/issues/%d", owner, repo, number)

	jsonBody, err := json.Marshal(map[string]interface{}{
		"body": body,
	})
	if err != nil {
		return models.Issue{}, fmt.Errorf("failed to encode request body: %w", err)
	}

	var issue models.Issue
	if err := c.rest.Patch(path, bytes.NewReader(jsonBody), &issue); err != nil {
		return models.Issue{}, fmt.Errorf("failed to update issue #%d: %w", number, err)
	}
	return issue, nil
}
