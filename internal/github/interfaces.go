package github

import (
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

// GitHubClient defines the interface for GitHub operations
type GitHubClient interface {
	GetCurrentUserLogin() (string, error)
	ListIssuesByLabel(owner, repo, label, state string) ([]models.Issue, error)
	ListTags(owner, repo string) ([]models.Tag, error)
	CreateIssue(owner, repo string, req models.IssueRequest) (models.Issue, error)
	UpdateIssueBody(owner, repo string, number int, body string) (models.Issue, error)
}

// RepositoryInfo defines repository information interface
type RepositoryInfo interface {
	GetHost() string
	GetOwner() string
	GetName() string
}

// Ensure Client implements GitHubClient interface
var _ GitHubClient = (*Client)(nil)
