package github

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/ryo246912/gh-deploy-checklist/internal/models"
)

// rewriteTransport sends every request to the test server
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	client, err := NewClientWithOptions(api.ClientOptions{
		Host:      "github.com",
		AuthToken: "test-token",
		Transport: rewriteTransport{target: target},
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_GetCurrentUserLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, `{"login": "releaser", "type": "User"}`)
	})

	login, err := client.GetCurrentUserLogin()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if login != "releaser" {
		t.Errorf("GetCurrentUserLogin() = %q, want %q", login, "releaser")
	}
}

func TestClient_ListIssuesByLabel(t *testing.T) {
	var gotVariables map[string]interface{}
	var gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode GraphQL request: %v", err)
		}
		gotQuery = req.Query
		gotVariables = req.Variables
		writeJSON(w, http.StatusOK, `{"data": {"repository": {"issues": {"nodes": [
			{"number": 42, "title": "Deploy Checklist: 1.0.0-1", "url": "https://github.com/owner/repo/issues/42",
			 "body": "**Release Version:** 1.0.0-1", "state": "OPEN",
			 "labels": {"nodes": [{"name": "DeployChecklist"}, {"name": "release"}]}}
		]}}}}`)
	})

	issues, err := client.ListIssuesByLabel("owner", "repo", "DeployChecklist", "open")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(gotQuery, "IssueState") {
		t.Errorf("query should declare IssueState list variable, got %q", gotQuery)
	}
	if gotVariables["owner"] != "owner" || gotVariables["name"] != "repo" {
		t.Errorf("unexpected repository variables: %v", gotVariables)
	}
	states, _ := gotVariables["states"].([]interface{})
	if len(states) != 1 || states[0] != "OPEN" {
		t.Errorf("states variable = %v, want [OPEN]", gotVariables["states"])
	}

	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d", len(issues))
	}
	issue := issues[0]
	if issue.Number != 42 || issue.HTMLURL != "https://github.com/owner/repo/issues/42" {
		t.Errorf("unexpected issue: %+v", issue)
	}
	if got := issue.LabelNames(); len(got) != 2 || got[0] != "DeployChecklist" {
		t.Errorf("LabelNames() = %v", got)
	}
}

func TestClient_ListTags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/tags" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("per_page") != "100" {
			t.Errorf("per_page = %q, want 100", r.URL.Query().Get("per_page"))
		}
		writeJSON(w, http.StatusOK, `[{"name": "1.0.2-1"}, {"name": "1.0.1-9"}, {"name": "1.0.2-0"}]`)
	})

	tags, err := client.ListTags("owner", "repo")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []string{"1.0.2-1", "1.0.1-9", "1.0.2-0"}
	if len(tags) != len(want) {
		t.Fatalf("Expected %d tags, got %d", len(want), len(tags))
	}
	for i, tag := range tags {
		if tag.Name != want[i] {
			t.Errorf("tags[%d] = %q, want %q (order must be preserved)", i, tag.Name, want[i])
		}
	}
}

func TestClient_CreateIssue(t *testing.T) {
	var got models.IssueRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/owner/repo/issues" {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		writeJSON(w, http.StatusCreated, `{"number": 7, "title": "Deploy Checklist: 1.0.0", "html_url": "https://github.com/owner/repo/issues/7"}`)
	})

	issue, err := client.CreateIssue("owner", "repo", models.IssueRequest{
		Title:     "Deploy Checklist: 1.0.0",
		Body:      "body",
		Labels:    []string{"DeployChecklist"},
		Assignees: []string{"releaser"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if issue.Number != 7 {
		t.Errorf("issue.Number = %d, want 7", issue.Number)
	}
	if got.Title != "Deploy Checklist: 1.0.0" || len(got.Labels) != 1 || got.Assignees[0] != "releaser" {
		t.Errorf("unexpected request payload: %+v", got)
	}
}

func TestClient_UpdateIssueBody(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/repos/owner/repo/issues/7" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Body string `json:"body"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotBody = req.Body
		writeJSON(w, http.StatusOK, `{"number": 7, "body": "updated"}`)
	})

	issue, err := client.UpdateIssueBody("owner", "repo", 7, "updated")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotBody != "updated" || issue.Body != "updated" {
		t.Errorf("body not sent or returned: sent %q, got %q", gotBody, issue.Body)
	}
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message": "Not Found"}`)
	})

	if _, err := client.ListTags("owner", "repo"); err == nil {
		t.Errorf("Expected error but got none")
	} else if !strings.Contains(err.Error(), "failed to fetch tags") {
		t.Errorf("Error %q should contain %q", err.Error(), "failed to fetch tags")
	}
}
