package session

import "errors"

// ErrNotAuthenticated reports a protected command invoked without a session.
// The caller redirects the user to the login flow instead of running the
// command.
var ErrNotAuthenticated = errors.New("session: not authenticated")

// Allowed is the access-gate predicate: it reports whether identity-requiring
// commands may run for the given session state. The check is synchronous at
// dispatch time; there is no background expiry detection, an expired token
// only surfaces when an API call fails authorization.
func Allowed(s Snapshot) bool {
	return s.Authenticated
}

// Guard returns ErrNotAuthenticated when the store's current state does not
// allow protected commands, and nil otherwise.
func Guard(s *Store) error {
	if !Allowed(s.Current()) {
		return ErrNotAuthenticated
	}
	return nil
}
