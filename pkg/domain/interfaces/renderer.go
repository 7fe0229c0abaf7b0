package interfaces

import (
	"context"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// Renderer defines the boundary to the external headless-browser rendering
// service: it turns an HTML document into raster image bytes.
type Renderer interface {
	// RenderPage rasterizes the document and returns PNG bytes. Any
	// failure (timeout, missing element, transport error) is returned as
	// an error; callers decide the fallback.
	RenderPage(ctx context.Context, html string, opts model.RenderOptions) ([]byte, error)
}
