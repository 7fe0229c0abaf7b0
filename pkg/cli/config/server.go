package config

import "github.com/urfave/cli/v3"

// Server holds HTTP server configuration
type Server struct {
	Addr        string
	WebhookPath string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("HERALD_ADDR"),
		},
		&cli.StringFlag{
			Name:        "webhook-path",
			Usage:       "Path of the GitHub webhook endpoint",
			Value:       "/github/webhook",
			Destination: &c.WebhookPath,
			Sources:     cli.EnvVars("HERALD_WEBHOOK_PATH"),
		},
	}
}
