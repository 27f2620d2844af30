package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ryo246912/gh-deploy-checklist/internal/config"
)

func TestNumberCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "pull request with default shape",
			args: []string{"https://github.com/Org/Repo/pull/482"},
			want: "482",
		},
		{
			name: "issue with issue shape",
			args: []string{"https://github.com/Org/Repo/issues/12", "--shape", "issue"},
			want: "12",
		},
		{
			name:    "pull request with issue shape",
			args:    []string{"https://github.com/Org/Repo/pull/482", "--shape", "issue"},
			wantErr: "expected a GitHub issue URL",
		},
		{
			name:    "unknown shape",
			args:    []string{"https://github.com/Org/Repo/pull/482", "--shape", "commit"},
			wantErr: "unknown URL shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newNumberCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Execute() error = %v, want to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "gh-deploy-checklist") {
		t.Errorf("version output %q should name the tool", out.String())
	}
}

func TestRepositoryAdapter(t *testing.T) {
	cfg := &config.Config{Repo: "github.com/org/app", Label: config.DefaultLabel}
	repo, err := resolveRepository(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	adapter := &RepositoryAdapter{repo: repo}
	if adapter.GetHost() != "github.com" || adapter.GetOwner() != "org" || adapter.GetName() != "app" {
		t.Errorf("unexpected adapter values: %s/%s/%s", adapter.GetHost(), adapter.GetOwner(), adapter.GetName())
	}
}

func TestResolveRepository_RejectsEnterpriseHost(t *testing.T) {
	cfg := &config.Config{Repo: "ghe.example.com/org/app", Label: config.DefaultLabel}
	_, err := resolveRepository(cfg)
	if err == nil || !strings.Contains(err.Error(), "unsupported host: ghe.example.com") {
		t.Fatalf("Expected unsupported host error, got %v", err)
	}
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "gh-deploy-checklist" {
		t.Errorf("root command is %q, want gh-deploy-checklist", rootCmd.Use)
	}
	for _, name := range []string{"show", "create", "verify", "resolve", "add", "compare", "number", "version"} {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestOptionalArg(t *testing.T) {
	if optionalArg(nil) != "" {
		t.Errorf("optionalArg(nil) should be empty")
	}
	if optionalArg([]string{"x"}) != "x" {
		t.Errorf("optionalArg should return the first argument")
	}
}
