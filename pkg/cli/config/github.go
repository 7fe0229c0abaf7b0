package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub webhook configuration
type GitHub struct {
	WebhookSecret string
}

// Flags returns CLI flags for GitHub configuration. The secret is
// optional but strongly recommended: without it, inbound deliveries are
// not authenticated.
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Shared secret for webhook signature verification",
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("HERALD_GITHUB_WEBHOOK_SECRET"),
		},
	}
}
