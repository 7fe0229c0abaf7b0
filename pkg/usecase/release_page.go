package usecase

import (
	"html/template"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// releasePageTemplate is a self-contained document for screenshotting a
// release. Layout width is fixed; the body grows downward and the capture
// is full-page.
//
// The release body is emitted as a JS string literal (html/template's
// script context encodes it) and converted to HTML client-side by
// marked.js, so arbitrary Markdown stays inert until marked parses it.
var releasePageTemplate = template.Must(template.New("release").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { margin: 0; background: #f6f8fa; font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; }
  .card { width: 760px; margin: 16px auto; padding: 24px; background: #fff; border: 1px solid #d0d7de; border-radius: 6px; }
  .repo { color: #57606a; font-size: 14px; }
  h1 { margin: 4px 0 8px; font-size: 24px; }
  .tag { display: inline-block; padding: 2px 10px; border: 1px solid #d0d7de; border-radius: 2em; font-size: 12px; color: #0969da; }
  .meta { margin-top: 8px; color: #57606a; font-size: 13px; }
  #release-body { margin-top: 16px; padding-top: 16px; border-top: 1px solid #d0d7de; font-size: 14px; line-height: 1.6; word-wrap: break-word; }
  #release-body pre { padding: 12px; background: #f6f8fa; border-radius: 6px; overflow-x: auto; }
  #release-body code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 85%; }
  #release-body img { max-width: 100%; }
</style>
<script src="https://cdn.jsdelivr.net/npm/marked@12.0.2/marked.min.js"></script>
</head>
<body>
<div class="card">
  <div class="repo">{{.Repository}}</div>
  <h1>{{.Name}}</h1>
  <span class="tag">{{.TagName}}</span>
  <div class="meta">{{.Author}} published this {{.PublishedAt}}</div>
  <div id="release-body"></div>
</div>
<script>
  var releaseBody = {{.Body}};
  document.getElementById("release-body").innerHTML = marked.parse(releaseBody);
</script>
</body>
</html>
`))

type releasePageData struct {
	Repository  string
	Name        string
	TagName     string
	Author      string
	PublishedAt string
	Body        string
}

// BuildReleasePage renders the self-contained HTML document for a release
func BuildReleasePage(info *model.ReleaseInfo) (string, error) {
	publishedAt := ""
	if !info.PublishedAt.IsZero() {
		publishedAt = info.PublishedAt.UTC().Format("Jan 2, 2006 15:04 MST")
	}

	body := info.Body
	if strings.TrimSpace(body) == "" {
		body = "_No release notes provided._"
	}

	var sb strings.Builder
	err := releasePageTemplate.Execute(&sb, releasePageData{
		Repository:  info.Repository,
		Name:        info.Name,
		TagName:     info.TagName,
		Author:      info.Author,
		PublishedAt: publishedAt,
		Body:        body,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to execute release page template",
			goerr.V("repository", info.Repository),
			goerr.V("tag", info.TagName),
		)
	}

	return sb.String(), nil
}
