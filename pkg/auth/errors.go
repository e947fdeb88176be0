package auth

// AuthError is raised only by identity-provider operations. The message is
// safe to show to the user.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

func authErr(message string, cause error) *AuthError {
	return &AuthError{Message: message, Cause: cause}
}
