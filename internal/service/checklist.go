package service

import (
	"errors"
	"fmt"

	"github.com/ryo246912/gh-deploy-checklist/internal/checklist"
	"github.com/ryo246912/gh-deploy-checklist/internal/config"
	"github.com/ryo246912/gh-deploy-checklist/internal/ghurl"
	"github.com/ryo246912/gh-deploy-checklist/internal/github"
	"github.com/ryo246912/gh-deploy-checklist/internal/logging"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
	"github.com/ryo246912/gh-deploy-checklist/internal/ui"
	"github.com/ryo246912/gh-deploy-checklist/internal/version"
)

var (
	ErrNotFound           = errors.New("no open checklist issue found")
	ErrAmbiguous          = errors.New("more than one open checklist issue found")
	ErrChecklistExists    = errors.New("an open checklist issue already exists")
	ErrItemNotInChecklist = errors.New("item is not in the checklist")
	ErrCancelled          = errors.New("cancelled")
)

// ChecklistService contains the business logic
type ChecklistService struct {
	client   github.GitHubClient
	repo     github.RepositoryInfo
	prompter ui.Prompter
	cfg      *config.Config
	logger   *logging.Logger
}

// NewChecklistService creates a new service instance
func NewChecklistService(client github.GitHubClient, repo github.RepositoryInfo, prompter ui.Prompter, cfg *config.Config, logger *logging.Logger) *ChecklistService {
	if cfg == nil {
		cfg = &config.Config{Label: config.DefaultLabel, TitleTemplate: config.DefaultTitleTemplate}
	}
	return &ChecklistService{
		client:   client,
		repo:     repo,
		prompter: prompter,
		cfg:      cfg,
		logger:   logger,
	}
}

// Snapshot is the open checklist together with the state of its checkboxes
type Snapshot struct {
	Issue    models.ChecklistIssue
	PRs      []models.ChecklistItem
	Blockers []models.ChecklistItem
}

// BodyInput is the state a checklist body is rendered from
type BodyInput struct {
	Tag                    string
	PRList                 []string
	VerifiedPRList         []string
	DeployBlockers         []string
	ResolvedDeployBlockers []string
}

// findIssue returns the single open issue carrying the checklist label
func (s *ChecklistService) findIssue() (models.Issue, error) {
	issues, err := s.client.ListIssuesByLabel(s.repo.GetOwner(), s.repo.GetName(), s.cfg.Label, "open")
	if err != nil {
		return models.Issue{}, fmt.Errorf("failed to list checklist issues: %w", err)
	}

	switch len(issues) {
	case 0:
		return models.Issue{}, fmt.Errorf("%w: label %q in %s/%s", ErrNotFound, s.cfg.Label, s.repo.GetOwner(), s.repo.GetName())
	case 1:
		return issues[0], nil
	default:
		numbers := make([]int, len(issues))
		for i, issue := range issues {
			numbers[i] = issue.Number
		}
		return models.Issue{}, fmt.Errorf("%w: label %q matches issues %v", ErrAmbiguous, s.cfg.Label, numbers)
	}
}

// GetChecklist finds the open checklist issue and decodes its body
func (s *ChecklistService) GetChecklist() (models.ChecklistIssue, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return models.ChecklistIssue{}, err
	}
	return snap.Issue, nil
}

// Snapshot finds the open checklist issue and decodes its body and checkbox state
func (s *ChecklistService) Snapshot() (Snapshot, error) {
	issue, err := s.findIssue()
	if err != nil {
		return Snapshot{}, err
	}

	fields, err := checklist.Decode(issue.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode checklist #%d: %w", issue.Number, err)
	}
	sections, err := checklist.Tokenize(issue.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode checklist #%d: %w", issue.Number, err)
	}

	snap := Snapshot{
		Issue: models.ChecklistIssue{
			Number:         issue.Number,
			Title:          issue.Title,
			URL:            issue.HTMLURL,
			Labels:         issue.LabelNames(),
			Tag:            fields.Tag,
			ComparisonURL:  fields.ComparisonURL,
			PRList:         fields.PRList,
			DeployBlockers: fields.DeployBlockers,
		},
		PRs:      []models.ChecklistItem{},
		Blockers: []models.ChecklistItem{},
	}
	for _, section := range sections {
		if section.Kind == checklist.PullRequests {
			snap.PRs = section.Items
		} else {
			snap.Blockers = section.Items
		}
	}
	s.logger.Debugf("checklist #%d: release %s, %d pull requests, %d deploy blockers",
		issue.Number, fields.Tag, len(fields.PRList), len(fields.DeployBlockers))
	return snap, nil
}

// CompareLink builds the compare link from the tag selected for level
func (s *ChecklistService) CompareLink(tag string, level version.Level) (string, error) {
	tags, err := s.client.ListTags(s.repo.GetOwner(), s.repo.GetName())
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}

	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}

	previous, err := version.SelectComparisonTag(names, tag, level)
	if err != nil {
		return "", err
	}
	s.logger.Debugf("comparing %s against %s (%s level)", tag, previous, level)
	return version.CompareURL(s.repo.GetHost(), s.repo.GetOwner(), s.repo.GetName(), previous, tag), nil
}

// GenerateBody renders a checklist body, comparing tag against the
// previous build
func (s *ChecklistService) GenerateBody(in BodyInput) (string, error) {
	compareURL, err := s.CompareLink(in.Tag, version.Build)
	if err != nil {
		s.logger.Warnf("cannot build compare link for %s: %v", in.Tag, err)
		return "", fmt.Errorf("failed to generate checklist body: %w", err)
	}

	body, err := checklist.Encode(checklist.EncodeInput{
		Tag:                    in.Tag,
		ComparisonURL:          compareURL,
		PRList:                 in.PRList,
		VerifiedPRList:         in.VerifiedPRList,
		DeployBlockers:         in.DeployBlockers,
		ResolvedDeployBlockers: in.ResolvedDeployBlockers,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate checklist body: %w", err)
	}
	return body, nil
}

// CreateChecklist opens a new checklist issue for tag
func (s *ChecklistService) CreateChecklist(tag string, prs, blockers []string, assumeYes bool) (models.Issue, error) {
	existing, err := s.findIssue()
	switch {
	case err == nil:
		return models.Issue{}, fmt.Errorf("%w: #%d %s", ErrChecklistExists, existing.Number, existing.HTMLURL)
	case errors.Is(err, ErrAmbiguous):
		return models.Issue{}, fmt.Errorf("%w: %v", ErrChecklistExists, err)
	case !errors.Is(err, ErrNotFound):
		return models.Issue{}, err
	}

	body, err := s.GenerateBody(BodyInput{Tag: tag, PRList: prs, DeployBlockers: blockers})
	if err != nil {
		return models.Issue{}, err
	}

	title := s.cfg.IssueTitle(tag)
	if !assumeYes {
		confirmed, err := s.prompter.Confirm(fmt.Sprintf("Create %q with %d pull requests and %d deploy blockers?", title, len(prs), len(blockers)))
		if err != nil {
			return models.Issue{}, fmt.Errorf("failed to confirm creation: %w", err)
		}
		if !confirmed {
			return models.Issue{}, fmt.Errorf("checklist creation %w", ErrCancelled)
		}
	}

	assignee := s.cfg.Assignee
	if assignee == "" {
		assignee, err = s.client.GetCurrentUserLogin()
		if err != nil {
			return models.Issue{}, fmt.Errorf("failed to get current user: %w", err)
		}
	}

	issue, err := s.client.CreateIssue(s.repo.GetOwner(), s.repo.GetName(), models.IssueRequest{
		Title:     title,
		Body:      body,
		Labels:    s.cfg.IssueLabels(),
		Assignees: []string{assignee},
	})
	if err != nil {
		return models.Issue{}, fmt.Errorf("failed to create checklist: %w", err)
	}
	s.logger.Infof("created checklist #%d for %s", issue.Number, tag)
	return issue, nil
}

// VerifyPR checks off a pull request; an empty url prompts for one
func (s *ChecklistService) VerifyPR(url string) (models.Issue, error) {
	return s.check(checklist.PullRequests, url)
}

// ResolveBlocker checks off a deploy blocker; an empty url prompts for one
func (s *ChecklistService) ResolveBlocker(url string) (models.Issue, error) {
	return s.check(checklist.DeployBlockers, url)
}

func (s *ChecklistService) check(kind checklist.SectionKind, url string) (models.Issue, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return models.Issue{}, err
	}

	items := snap.PRs
	if kind == checklist.DeployBlockers {
		items = snap.Blockers
	}

	if url == "" {
		unchecked := make([]models.ChecklistItem, 0, len(items))
		for _, item := range items {
			if !item.Checked {
				unchecked = append(unchecked, item)
			}
		}
		if len(unchecked) == 0 {
			return models.Issue{}, fmt.Errorf("no unchecked %s left in checklist #%d", kind, snap.Issue.Number)
		}
		url, err = s.prompter.SelectItem(fmt.Sprintf("Select %s", kind), unchecked)
		if err != nil {
			return models.Issue{}, fmt.Errorf("failed to select item: %w", err)
		}
	}

	if _, err := ghurl.NumberForShape(url, kind.ItemShape()); err != nil {
		return models.Issue{}, err
	}

	var found *models.ChecklistItem
	for i := range items {
		if items[i].URL == url {
			found = &items[i]
			break
		}
	}
	if found == nil {
		return models.Issue{}, fmt.Errorf("%w: %s is not listed under %s of #%d", ErrItemNotInChecklist, url, kind, snap.Issue.Number)
	}
	if found.Checked {
		s.logger.Infof("%s is already checked in #%d", url, snap.Issue.Number)
		return models.Issue{Number: snap.Issue.Number, HTMLURL: snap.Issue.URL, Title: snap.Issue.Title}, nil
	}

	in := snap.bodyInput()
	if kind == checklist.PullRequests {
		in.VerifiedPRList = append(in.VerifiedPRList, url)
	} else {
		in.ResolvedDeployBlockers = append(in.ResolvedDeployBlockers, url)
	}
	return s.update(snap.Issue, in)
}

// AddItems appends pull requests and deploy blockers to the open checklist
func (s *ChecklistService) AddItems(prs, blockers []string) (models.Issue, error) {
	if len(prs) == 0 && len(blockers) == 0 {
		return models.Issue{}, fmt.Errorf("nothing to add")
	}
	for _, url := range prs {
		if _, err := ghurl.PullRequestNumber(url); err != nil {
			return models.Issue{}, err
		}
	}
	for _, url := range blockers {
		if _, err := ghurl.IssueOrPullRequestNumber(url); err != nil {
			return models.Issue{}, err
		}
	}

	snap, err := s.Snapshot()
	if err != nil {
		return models.Issue{}, err
	}

	in := snap.bodyInput()
	in.PRList = append(in.PRList, prs...)
	in.DeployBlockers = append(in.DeployBlockers, blockers...)
	return s.update(snap.Issue, in)
}

func (s *ChecklistService) update(issue models.ChecklistIssue, in BodyInput) (models.Issue, error) {
	body, err := s.GenerateBody(in)
	if err != nil {
		return models.Issue{}, err
	}

	updated, err := s.client.UpdateIssueBody(s.repo.GetOwner(), s.repo.GetName(), issue.Number, body)
	if err != nil {
		return models.Issue{}, fmt.Errorf("failed to update checklist: %w", err)
	}
	s.logger.Infof("updated checklist #%d", issue.Number)
	return updated, nil
}

func (snap Snapshot) bodyInput() BodyInput {
	in := BodyInput{
		Tag:                    snap.Issue.Tag,
		PRList:                 append([]string{}, snap.Issue.PRList...),
		DeployBlockers:         append([]string{}, snap.Issue.DeployBlockers...),
		VerifiedPRList:         []string{},
		ResolvedDeployBlockers: []string{},
	}
	for _, item := range snap.PRs {
		if item.Checked {
			in.VerifiedPRList = append(in.VerifiedPRList, item.URL)
		}
	}
	for _, item := range snap.Blockers {
		if item.Checked {
			in.ResolvedDeployBlockers = append(in.ResolvedDeployBlockers, item.URL)
		}
	}
	return in
}
