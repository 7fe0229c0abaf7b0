package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Destination identifies where a notification should be delivered, parsed
// from a "platform:channelId" string.
type Destination struct {
	Platform string
	Channel  string
}

// ParseDestination splits a destination string on the first colon. The
// remainder after the first colon is the channel id verbatim, so channel
// ids may themselves contain colons. Both parts must be non-empty.
func ParseDestination(s string) (Destination, error) {
	platform, channel, found := strings.Cut(s, ":")
	if !found {
		return Destination{}, goerr.New("destination has no platform delimiter", goerr.V("destination", s))
	}
	if platform == "" || channel == "" {
		return Destination{}, goerr.New("destination has empty platform or channel", goerr.V("destination", s))
	}

	return Destination{Platform: platform, Channel: channel}, nil
}

// String reconstructs the destination string
func (d Destination) String() string {
	return d.Platform + ":" + d.Channel
}

// RouteTable maps repository full names (owner/repo, case-sensitive) to
// ordered destination strings. It is built once at startup and read-only
// during request handling.
type RouteTable struct {
	routes map[string][]string
}

// NewRouteTable creates a route table from a repository→destinations map.
// Destination order is preserved; it determines delivery iteration order.
func NewRouteTable(routes map[string][]string) *RouteTable {
	copied := make(map[string][]string, len(routes))
	for repo, dests := range routes {
		copied[repo] = append([]string(nil), dests...)
	}
	return &RouteTable{routes: copied}
}

// Lookup returns the destinations configured for a repository full name
func (t *RouteTable) Lookup(fullName string) ([]string, bool) {
	dests, ok := t.routes[fullName]
	return dests, ok
}

// Len returns the number of configured repositories
func (t *RouteTable) Len() int {
	return len(t.routes)
}
