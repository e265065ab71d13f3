package guard

// Package guard implements the pre-render route guard. It is a pure function
// of (path, replica value): no network access, no token validation. A stale
// but present replica grants provisional navigation that the session
// controller's who-am-I check corrects on the first authenticated fetch.

import "strings"

// Well-known navigation targets.
const (
	LoginPath    = "/login"
	RegisterPath = "/register"
	HomePath     = "/"
)

// Action is the guard's verdict for a navigation.
type Action string

const (
	ActionAllow    Action = "allow"
	ActionRedirect Action = "redirect"
)

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	Action Action
	// Target is the redirect destination; empty when Action is allow.
	Target string
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool { return d.Action == ActionAllow }

// Evaluate decides whether a navigation to path may proceed given the
// replica's current value. Protected paths without a replica token redirect
// to login; the public auth pages with one redirect home; everything else
// is allowed.
func Evaluate(path, replicaToken string) Decision {
	protected := strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/events")
	public := path == LoginPath || path == RegisterPath

	if protected && replicaToken == "" {
		return Decision{Action: ActionRedirect, Target: LoginPath}
	}
	if public && replicaToken != "" {
		return Decision{Action: ActionRedirect, Target: HomePath}
	}
	return Decision{Action: ActionAllow}
}
