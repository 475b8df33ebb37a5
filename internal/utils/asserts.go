package utils

import "log"

// MustBeTrue aborts the process when an internal invariant is violated.
// It guards states that are unreachable unless the structure itself is
// corrupt, so continuing would only smear the damage.
func MustBeTrue(condition bool, msg string) {
	if !condition {
		log.Fatal(msg)
	}
}
