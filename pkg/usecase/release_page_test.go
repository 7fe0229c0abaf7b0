package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/herald-bot/herald/pkg/domain/model"
	"github.com/herald-bot/herald/pkg/usecase"
)

func TestBuildReleasePage(t *testing.T) {
	info := &model.ReleaseInfo{
		Repository:  "octocat/hello-world",
		Name:        "Spring release",
		TagName:     "v1.2.3",
		Author:      "erin",
		Body:        "## Changes\n\n- everything",
		PublishedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	page, err := usecase.BuildReleasePage(info)
	gt.NoError(t, err)

	for _, want := range []string{
		`id="release-body"`,
		"marked.min.js",
		"octocat/hello-world",
		"Spring release",
		"v1.2.3",
		"erin",
		"Mar 1, 2024",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page should contain %q", want)
		}
	}
}

func TestBuildReleasePage_BodyIsScriptEncoded(t *testing.T) {
	info := &model.ReleaseInfo{
		Repository: "octocat/hello-world",
		Name:       "v1",
		TagName:    "v1",
		Author:     "erin",
		Body:       "# Hi\n</script><script>alert(1)</script>",
	}

	page, err := usecase.BuildReleasePage(info)
	gt.NoError(t, err)

	// The body is embedded as a JS string literal, so angle brackets must
	// be encoded and the raw closing tag must never appear outside the
	// template's own script
	if strings.Contains(page, "</script><script>alert(1)") {
		t.Error("raw release body leaked into the document")
	}
	if !strings.Contains(page, `\u003c`) {
		t.Error("release body should be script-encoded")
	}
}

func TestBuildReleasePage_EmptyBodyPlaceholder(t *testing.T) {
	info := &model.ReleaseInfo{
		Repository: "octocat/hello-world",
		Name:       "v1",
		TagName:    "v1",
		Author:     "erin",
		Body:       "   ",
	}

	page, err := usecase.BuildReleasePage(info)
	gt.NoError(t, err)

	if !strings.Contains(page, "No release notes provided") {
		t.Error("empty body should render the placeholder note")
	}
}
