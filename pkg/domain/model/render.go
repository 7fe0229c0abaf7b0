package model

import "time"

// RenderOptions controls how the external rendering service rasterizes an
// HTML document.
type RenderOptions struct {
	ViewportWidth  int           // Fixed width so screenshot dimensions are reproducible
	ViewportHeight int           // Initial height; full-page capture grows past it
	WaitSelector   string        // CSS selector that must appear before capture
	WaitTimeout    time.Duration // Budget for the selector wait
	FullPage       bool          // Capture the full document body, not the viewport
}

// DefaultRenderOptions returns the options used for release note pages
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ViewportWidth:  800,
		ViewportHeight: 400,
		WaitSelector:   "#release-body",
		WaitTimeout:    10 * time.Second,
		FullPage:       true,
	}
}
