package impass

import "errors"

var (
	// ErrPasswordMismatch is returned when a candidate password doesn't match the stored token.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrHashPrimitive is returned when the adaptive hash fails, which indicates a corrupted payload rather than a wrong password.
	ErrHashPrimitive = errors.New("unable to verify password hash")
	// ErrPasswordRequired is returned when a payload is protected but no password or PasswordSource is available.
	ErrPasswordRequired = errors.New("payload is password-protected, but no password was provided")
	// ErrSecretTooLong is returned when a secret can't fit in a payload.
	ErrSecretTooLong = errors.New("secret is too long")
	// ErrNoPayload is returned when an image doesn't carry anything after its terminal marker.
	ErrNoPayload = errors.New("image does not carry a payload")
)
