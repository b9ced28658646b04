// Package directory implements the credential-verification boundary with
// hardcoded demo tables. Each verifier maps a fixed (email, password) pair to
// a canned identity record. It is an explicit stand-in for a real credential
// check: any production deployment replaces these implementations behind the
// same session.Verifier interface without touching the session store.
package directory

import "time"

// Clock abstracts time for deterministic identity fabrication in tests.
type Clock func() time.Time

func clockOrNow(clock Clock) Clock {
	if clock != nil {
		return clock
	}

	return time.Now
}
