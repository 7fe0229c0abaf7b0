package types

// Version is the application version, overridden at build time via ldflags
var Version = "0.1.0"

// GitHub webhook header names. http.Header lookups are case-insensitive,
// so both the canonical and legacy casings resolve to these.
const (
	HeaderEvent     = "X-GitHub-Event"
	HeaderDelivery  = "X-GitHub-Delivery"
	HeaderSignature = "X-Hub-Signature-256"
)
