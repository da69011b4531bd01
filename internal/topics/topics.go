// Package topics holds the event-bus topic names used across modules.
package topics

const (
	// SessionSignedIn is published after a wallet connection stored a
	// new dashboard session.
	SessionSignedIn = "session.signed_in"
	// SessionSignedOut is published after a sign-out cleared the
	// session slot.
	SessionSignedOut = "session.signed_out"
)
