package github

import (
	"fmt"

	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	// Control test behavior
	CurrentUser      string
	CurrentUserError error
	Issues           []models.Issue
	IssuesError      error
	Tags             []models.Tag
	TagsError        error
	CreatedIssue     models.Issue
	CreateError      error
	UpdateError      error

	// Track method calls
	GetCurrentUserLoginCalled bool
	ListIssuesByLabelCalled   bool
	ListTagsCalled            bool
	CreateIssueCalled         bool
	UpdateIssueBodyCalled     bool

	// Store call arguments for verification
	LastOwner        string
	LastRepo         string
	LastLabel        string
	LastState        string
	LastIssueRequest models.IssueRequest
	LastIssueNumber  int
	LastBody         string
}

// GetCurrentUserLogin mocks the GitHub API call
func (m *MockClient) GetCurrentUserLogin() (string, error) {
	m.GetCurrentUserLoginCalled = true
	return m.CurrentUser, m.CurrentUserError
}

// ListIssuesByLabel mocks the GraphQL API call
func (m *MockClient) ListIssuesByLabel(owner, repo, label, state string) ([]models.Issue, error) {
	m.ListIssuesByLabelCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastLabel = label
	m.LastState = state
	return m.Issues, m.IssuesError
}

// ListTags mocks the tags endpoint
func (m *MockClient) ListTags(owner, repo string) ([]models.Tag, error) {
	m.ListTagsCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	return m.Tags, m.TagsError
}

// CreateIssue mocks issue creation and echoes the request back
func (m *MockClient) CreateIssue(owner, repo string, req models.IssueRequest) (models.Issue, error) {
	m.CreateIssueCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastIssueRequest = req
	if m.CreateError != nil {
		return models.Issue{}, m.CreateError
	}
	issue := m.CreatedIssue
	if issue.Title == "" {
		issue.Title = req.Title
	}
	if issue.Body == "" {
		issue.Body = req.Body
	}
	return issue, nil
}

// UpdateIssueBody mocks the issue update call
func (m *MockClient) UpdateIssueBody(owner, repo string, number int, body string) (models.Issue, error) {
	m.UpdateIssueBodyCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastIssueNumber = number
	m.LastBody = body
	if m.UpdateError != nil {
		return models.Issue{}, m.UpdateError
	}
	return models.Issue{Number: number, Body: body}, nil
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.GetCurrentUserLoginCalled = false
	m.ListIssuesByLabelCalled = false
	m.ListTagsCalled = false
	m.CreateIssueCalled = false
	m.UpdateIssueBodyCalled = false
	m.LastOwner = ""
	m.LastRepo = ""
	m.LastLabel = ""
	m.LastState = ""
	m.LastIssueRequest = models.IssueRequest{}
	m.LastIssueNumber = 0
	m.LastBody = ""
}

// MockRepository implements repository information for testing
type MockRepository struct {
	Host  string
	Owner string
	Name  string
}

func (m *MockRepository) GetHost() string {
	return m.Host
}

func (m *MockRepository) GetOwner() string {
	return m.Owner
}

func (m *MockRepository) GetName() string {
	return m.Name
}

// Helper functions for creating test data
func CreateTestTags(names ...string) []models.Tag {
	tags := make([]models.Tag, len(names))
	for i, name := range names {
		tags[i] = models.Tag{Name: name}
	}
	return tags
}

func CreateTestIssue(number int, label, body string) models.Issue {
	return models.Issue{
		Number:  number,
		Title:   fmt.Sprintf("Deploy Checklist #%d", number),
		HTMLURL: fmt.Sprintf("https://github.com/owner/repo/issues/%d", number),
		Body:    body,
		State:   "OPEN",
		Labels:  []models.Label{{Name: label}},
	}
}

// Error helpers for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}

func NewNetworkError() error {
	return fmt.Errorf("network connection failed")
}
