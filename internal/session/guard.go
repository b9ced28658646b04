package session

// State is the slice of Store state an authorization decision depends on.
type State struct {
	Loading       bool
	Authenticated bool
}

// DecisionKind enumerates the possible guard outcomes.
type DecisionKind int

const (
	// DecisionPending means restoration has not completed; render a neutral
	// waiting state, neither content nor a redirect.
	DecisionPending DecisionKind = iota
	// DecisionAllow means the protected content may be rendered.
	DecisionAllow
	// DecisionRedirect means the request must be redirected to the role's
	// login route.
	DecisionRedirect
)

// Decision is the result of authorizing access to a protected route.
type Decision struct {
	Kind         DecisionKind
	RedirectPath string // Set only when Kind is DecisionRedirect.
}

// Authorize decides route access from store state alone. While the store is
// loading it returns Pending so callers never flash a redirect before
// restoration completes.
func Authorize(st State, loginPath string) Decision {
	if st.Loading {
		return Decision{Kind: DecisionPending}
	}
	if st.Authenticated {
		return Decision{Kind: DecisionAllow}
	}

	return Decision{Kind: DecisionRedirect, RedirectPath: loginPath}
}
