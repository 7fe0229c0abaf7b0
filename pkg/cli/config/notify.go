package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/herald-bot/herald/pkg/domain/model"
)

// Notify holds notification pipeline configuration: the route table file
// and the transformer knobs.
type Notify struct {
	RoutesPath     string
	TruncateLength int64
	StarThreshold  int64
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "routes",
			Usage:       "Path to the TOML route table (repository to destinations)",
			Required:    true,
			Destination: &c.RoutesPath,
			Sources:     cli.EnvVars("HERALD_ROUTES"),
		},
		&cli.IntFlag{
			Name:        "truncate-length",
			Usage:       "Maximum length of issue/PR body previews",
			Value:       200,
			Destination: &c.TruncateLength,
			Sources:     cli.EnvVars("HERALD_TRUNCATE_LENGTH"),
		},
		&cli.IntFlag{
			Name:        "star-threshold",
			Usage:       "Notify only when the star count is a multiple of this value",
			Value:       1,
			Destination: &c.StarThreshold,
			Sources:     cli.EnvVars("HERALD_STAR_THRESHOLD"),
		},
	}
}

// Validate checks the transformer knobs
func (c *Notify) Validate() error {
	if c.TruncateLength <= 0 {
		return goerr.New("truncate-length must be positive", goerr.V("value", c.TruncateLength))
	}
	if c.StarThreshold <= 0 {
		return goerr.New("star-threshold must be positive", goerr.V("value", c.StarThreshold))
	}
	return nil
}

// routesFile is the TOML shape of the route table:
//
//	[routes]
//	"octocat/hello-world" = ["onebot:123456789", "slack:C0123ABCDEF"]
type routesFile struct {
	Routes map[string][]string `toml:"routes"`
}

// LoadRoutes reads and validates the route table. Destination syntax is
// checked here so a typo fails at startup, not at delivery time.
func (c *Notify) LoadRoutes() (*model.RouteTable, error) {
	data, err := os.ReadFile(c.RoutesPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read route table", goerr.V("path", c.RoutesPath))
	}

	var file routesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse route table", goerr.V("path", c.RoutesPath))
	}

	if len(file.Routes) == 0 {
		return nil, goerr.New("route table has no repositories", goerr.V("path", c.RoutesPath))
	}

	for repo, dests := range file.Routes {
		if len(dests) == 0 {
			return nil, goerr.New("repository has no destinations", goerr.V("repository", repo))
		}
		for _, dest := range dests {
			if _, err := model.ParseDestination(dest); err != nil {
				return nil, goerr.Wrap(err, "invalid destination in route table",
					goerr.V("repository", repo),
					goerr.V("destination", dest),
				)
			}
		}
	}

	return model.NewRouteTable(file.Routes), nil
}
