// Package auth is the identity provider: sign-up, sign-in and
// password-reset requests, plus the session tokens that carry an
// authenticated identity.
//
// Every provider failure is an *AuthError with a human-readable message,
// surfaced at the point of the action. Auth failures never touch already
// loaded record lists.
package auth
