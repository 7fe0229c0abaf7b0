package config

import "github.com/urfave/cli/v3"

// Renderer holds rendering service configuration
type Renderer struct {
	URL string
}

// Flags returns CLI flags for renderer configuration. With no URL
// configured, release notifications always fall back to plain text.
func (c *Renderer) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "renderer-url",
			Usage:       "Base URL of the headless-browser rendering service",
			Destination: &c.URL,
			Sources:     cli.EnvVars("HERALD_RENDERER_URL"),
		},
	}
}
