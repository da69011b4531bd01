package wallet

import "errors"

var (
	// ErrNotInstalled is returned when the wallet extension capability
	// is not available in the user's browser.
	ErrNotInstalled = errors.New("wallet extension not installed")
	// ErrRejected is returned when the user declines the connection
	// prompt in the wallet.
	ErrRejected = errors.New("connection rejected by user")
	// ErrNoDevice is returned when no hardware wallet device can be
	// discovered on the transport.
	ErrNoDevice = errors.New("no hardware wallet device found")
	// ErrAppClosed is returned when the device is present but the
	// chain application is not open on it.
	ErrAppClosed = errors.New("chain app not open on device")
)
