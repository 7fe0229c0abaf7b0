package config

import "github.com/urfave/cli/v3"

// Slack holds the built-in Slack platform session configuration
type Slack struct {
	Token string
}

// Flags returns CLI flags for Slack configuration. Without a token the
// Slack session is not registered and "slack:*" destinations fall back to
// the gateway broadcast.
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token for slack:<channel> destinations",
			Destination: &c.Token,
			Sources:     cli.EnvVars("HERALD_SLACK_TOKEN"),
		},
	}
}
