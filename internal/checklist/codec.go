package checklist

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/ryo246912/gh-deploy-checklist/internal/ghurl"
	"github.com/ryo246912/gh-deploy-checklist/internal/version"
)

const crlf = "\r\n"

var (
	tagRegex     = regexp.MustCompile(regexp.QuoteMeta(ReleaseVersionHeader) + "[ \t]*`?(" + version.Pattern + ")")
	compareRegex = regexp.MustCompile(`https://[^\s/]+/[^\s/]+/[^\s/]+/compare/` + version.Pattern + `\.\.\.` + version.Pattern)
)

// Fields is the structured content of a checklist body.
type Fields struct {
	Tag            string
	ComparisonURL  string
	PRList         []string
	DeployBlockers []string
}

// Decode extracts the release tag, compare link and both URL lists from
// body. Checkbox state is dropped. Both list sections are optional; the tag
// and compare link are not. The tag is only read from the release version
// line.
func Decode(body string) (Fields, error) {
	m := tagRegex.FindStringSubmatch(body)
	if m == nil {
		return Fields{}, malformed("no release version found", nil)
	}
	tag := m[1]
	compareURL := compareRegex.FindString(body)
	if compareURL == "" {
		return Fields{}, malformed("no compare changes link found", nil)
	}

	sections, err := Tokenize(body)
	if err != nil {
		return Fields{}, err
	}

	f := Fields{
		Tag:            tag,
		ComparisonURL:  compareURL,
		PRList:         []string{},
		DeployBlockers: []string{},
	}
	for _, s := range sections {
		switch s.Kind {
		case PullRequests:
			f.PRList = s.URLs()
		case DeployBlockers:
			f.DeployBlockers = s.URLs()
		}
	}
	return f, nil
}

// EncodeInput is everything needed to render a checklist body.
type EncodeInput struct {
	Tag                    string
	ComparisonURL          string
	PRList                 []string
	VerifiedPRList         []string
	DeployBlockers         []string
	ResolvedDeployBlockers []string
}

// Encode renders the checklist body with CRLF line endings. Lists are
// deduplicated and sorted by their number; empty sections are left out.
func Encode(in EncodeInput) (string, error) {
	if _, err := version.Parse(in.Tag); err != nil {
		return "", fmt.Errorf("failed to render release version: %w", err)
	}
	if in.ComparisonURL == "" {
		return "", fmt.Errorf("failed to render compare link for %s: %w", in.Tag, version.ErrComparisonUnavailable)
	}

	prs, err := canonical(in.PRList, ghurl.PullRequestNumber)
	if err != nil {
		return "", fmt.Errorf("failed to render pull requests: %w", err)
	}
	blockers, err := canonical(in.DeployBlockers, ghurl.IssueOrPullRequestNumber)
	if err != nil {
		return "", fmt.Errorf("failed to render deploy blockers: %w", err)
	}

	var b strings.Builder
	b.WriteString(ReleaseVersionHeader + " " + in.Tag + crlf)
	b.WriteString(CompareChangesHeader + " " + in.ComparisonURL + crlf)

	if len(prs) > 0 {
		b.WriteString(PullRequestsHeader + crlf)
		writeItems(&b, prs, in.VerifiedPRList)
		b.WriteString(crlf)
	}
	if len(blockers) > 0 {
		b.WriteString(DeployBlockersHeader + crlf)
		writeItems(&b, blockers, in.ResolvedDeployBlockers)
	}
	return b.String(), nil
}

func writeItems(b *strings.Builder, urls, checked []string) {
	for _, url := range urls {
		box := "[ ]"
		if slices.Contains(checked, url) {
			box = "[x]"
		}
		b.WriteString("- " + box + " " + url + crlf)
	}
}

// canonical drops duplicate URLs and orders the rest by number, then URL.
func canonical(urls []string, number func(string) (int, error)) ([]string, error) {
	type entry struct {
		url string
		n   int
	}
	seen := make(map[string]struct{}, len(urls))
	entries := make([]entry, 0, len(urls))
	for _, url := range urls {
		if _, ok := seen[url]; ok {
			continue
		}
		n, err := number(url)
		if err != nil {
			return nil, err
		}
		seen[url] = struct{}{}
		entries = append(entries, entry{url: url, n: n})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.n, b.n); c != 0 {
			return c
		}
		return strings.Compare(a.url, b.url)
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.url
	}
	return out, nil
}
