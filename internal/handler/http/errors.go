package http

import "errors"

// Sentinel errors used by the session-authentication middleware. Callers can
// match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the incoming request does not
	// carry the session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrNotAdmin is returned when an authenticated session lacks the admin
	// role on an admin-only route.
	ErrNotAdmin = errors.New("session is not an admin session")
)

// Client-facing messages shared by handlers and middleware. They are part of
// the API contract and must not be reworded.
const (
	msgNotAuthorized      = "Not Authorized. Login Again"
	msgInvalidJSON        = "Invalid request body"
	msgTooManyRequests    = "Too many requests from this IP. Try again after 15 minutes."
	msgTooManyLogins      = "Too many login attempts. Try again after 15 minutes."
	msgUserAlreadyExists  = "User Already Exists"
	msgUserDoesNotExist   = "User doesn't exist"
	msgInvalidCredentials = "Invalid Credentials"
	msgRegistered         = "Registered successfully"
	msgLoggedIn           = "Logged in successfully"
	msgAdminLoggedIn      = "Admin logged in"
	msgLoggedOut          = "Logged out successfully"
)
