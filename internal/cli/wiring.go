package cli

import (
	"fmt"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/cli/go-gh/v2/pkg/repository"

	"github.com/ryo246912/gh-deploy-checklist/internal/config"
	"github.com/ryo246912/gh-deploy-checklist/internal/github"
	"github.com/ryo246912/gh-deploy-checklist/internal/logging"
	"github.com/ryo246912/gh-deploy-checklist/internal/service"
	"github.com/ryo246912/gh-deploy-checklist/internal/ui"
)

// RepositoryAdapter adapts repository.Repository to our interface
type RepositoryAdapter struct {
	repo repository.Repository
}

func (r *RepositoryAdapter) GetHost() string {
	return r.repo.Host
}

func (r *RepositoryAdapter) GetOwner() string {
	return r.repo.Owner
}

func (r *RepositoryAdapter) GetName() string {
	return r.repo.Name
}

// resolveRepository uses the configured repository or falls back to the
// one of the current directory. Only github.com repositories are accepted
func resolveRepository(cfg *config.Config) (repository.Repository, error) {
	var (
		repo repository.Repository
		err  error
	)
	if cfg.Repo != "" {
		repo, err = repository.Parse(cfg.Repo)
		if err != nil {
			return repository.Repository{}, fmt.Errorf("failed to parse repository %q: %w", cfg.Repo, err)
		}
	} else {
		repo, err = repository.Current()
		if err != nil {
			return repository.Repository{}, fmt.Errorf("failed to get current repository: %w", err)
		}
	}

	if err := config.CheckHost(repo.Host); err != nil {
		return repository.Repository{}, err
	}
	return repo, nil
}

// newService wires config, GitHub clients and prompts into a ChecklistService
func newService() (*service.ChecklistService, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	repo, err := resolveRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := github.NewClientWithOptions(api.ClientOptions{Host: repo.Host})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	logger := logging.Default(cfg.Verbose)
	logger.Debugf("using %s/%s/%s with label %q", repo.Host, repo.Owner, repo.Name, cfg.Label)

	return service.NewChecklistService(client, &RepositoryAdapter{repo: repo}, &ui.DefaultPrompter{}, cfg, logger), cfg, nil
}
