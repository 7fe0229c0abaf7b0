package model

import (
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
)

// IssueInfo represents information extracted from an issues event
type IssueInfo struct {
	Repository string
	Number     int
	Title      string
	Body       string
	User       string
	URL        string
	Action     string
}

// NewIssueInfo extracts issue information from a GitHub issues event.
// Required fields must be present; a payload missing them is rejected
// here rather than propagating zero values into message text.
func NewIssueInfo(ev *github.IssuesEvent) (*IssueInfo, error) {
	if ev.GetRepo() == nil || ev.GetIssue() == nil {
		return nil, goerr.New("missing repository or issue in issues event")
	}

	info := &IssueInfo{
		Repository: ev.GetRepo().GetFullName(),
		Number:     ev.GetIssue().GetNumber(),
		Title:      ev.GetIssue().GetTitle(),
		Body:       ev.GetIssue().GetBody(),
		User:       ev.GetSender().GetLogin(),
		URL:        ev.GetIssue().GetHTMLURL(),
		Action:     ev.GetAction(),
	}

	if info.Repository == "" || info.Number == 0 || info.URL == "" {
		return nil, goerr.New("missing required fields in issues event",
			goerr.V("repository", info.Repository),
			goerr.V("number", info.Number),
		)
	}

	return info, nil
}

// PullRequestInfo represents information extracted from a pull_request event
type PullRequestInfo struct {
	Repository string
	Number     int
	Title      string
	Body       string
	User       string
	URL        string
	HeadRef    string
	BaseRef    string
	Merged     bool
	Action     string
}

// NewPullRequestInfo extracts pull request information from a GitHub
// pull_request event
func NewPullRequestInfo(ev *github.PullRequestEvent) (*PullRequestInfo, error) {
	if ev.GetRepo() == nil || ev.GetPullRequest() == nil {
		return nil, goerr.New("missing repository or pull request in pull_request event")
	}

	pr := ev.GetPullRequest()
	info := &PullRequestInfo{
		Repository: ev.GetRepo().GetFullName(),
		Number:     pr.GetNumber(),
		Title:      pr.GetTitle(),
		Body:       pr.GetBody(),
		User:       ev.GetSender().GetLogin(),
		URL:        pr.GetHTMLURL(),
		HeadRef:    pr.GetHead().GetRef(),
		BaseRef:    pr.GetBase().GetRef(),
		Merged:     pr.GetMerged(),
		Action:     ev.GetAction(),
	}

	if info.Repository == "" || info.Number == 0 || info.URL == "" {
		return nil, goerr.New("missing required fields in pull_request event",
			goerr.V("repository", info.Repository),
			goerr.V("number", info.Number),
		)
	}

	return info, nil
}

// StarInfo represents information extracted from a star or watch event.
// Both carry the current stargazer count on the repository object.
type StarInfo struct {
	Repository    string
	RepositoryURL string
	User          string
	Count         int
	Action        string
}

// NewStarInfo extracts star information from a GitHub star event
func NewStarInfo(ev *github.StarEvent) (*StarInfo, error) {
	return starInfo(ev.GetRepo(), ev.GetSender(), ev.GetAction())
}

// NewWatchInfo extracts star information from a GitHub watch event.
// Watch events use the "started" action where star events use "created".
func NewWatchInfo(ev *github.WatchEvent) (*StarInfo, error) {
	info, err := starInfo(ev.GetRepo(), ev.GetSender(), ev.GetAction())
	if err != nil {
		return nil, err
	}
	if info.Action == "started" {
		info.Action = "created"
	}
	return info, nil
}

func starInfo(repo *github.Repository, sender *github.User, action string) (*StarInfo, error) {
	if repo == nil {
		return nil, goerr.New("missing repository in star event")
	}

	info := &StarInfo{
		Repository:    repo.GetFullName(),
		RepositoryURL: repo.GetHTMLURL(),
		User:          sender.GetLogin(),
		Count:         repo.GetStargazersCount(),
		Action:        action,
	}

	if info.Repository == "" {
		return nil, goerr.New("missing repository full name in star event")
	}

	return info, nil
}

// ReleaseInfo represents information extracted from a release event
type ReleaseInfo struct {
	Repository    string
	RepositoryURL string
	TagName       string
	Name          string
	Body          string
	Author        string
	URL           string
	PublishedAt   time.Time
	Action        string
}

// NewReleaseInfo extracts release information from a GitHub release event
func NewReleaseInfo(ev *github.ReleaseEvent) (*ReleaseInfo, error) {
	if ev.GetRepo() == nil || ev.GetRelease() == nil {
		return nil, goerr.New("missing repository or release in release event")
	}

	rel := ev.GetRelease()
	info := &ReleaseInfo{
		Repository:    ev.GetRepo().GetFullName(),
		RepositoryURL: ev.GetRepo().GetHTMLURL(),
		TagName:       rel.GetTagName(),
		Name:          rel.GetName(),
		Body:          rel.GetBody(),
		Author:        rel.GetAuthor().GetLogin(),
		URL:           rel.GetHTMLURL(),
		PublishedAt:   rel.GetPublishedAt().Time,
		Action:        ev.GetAction(),
	}

	if info.Name == "" {
		info.Name = info.TagName
	}

	if info.Repository == "" || info.TagName == "" {
		return nil, goerr.New("missing required fields in release event",
			goerr.V("repository", info.Repository),
			goerr.V("tag", info.TagName),
		)
	}

	return info, nil
}
