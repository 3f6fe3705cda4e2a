package validators

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/AdityaKanwar22/ShopSphere/models"
)

// Messages returned to the client when a check fails. They are part of the
// API contract and must not be reworded.
const (
	MsgNameRequired        = "Name is required"
	MsgNameLength          = "Name must be between 2 and 50 characters"
	MsgNameCharset         = "Name may only contain letters, numbers and spaces"
	MsgEmailInvalid        = "Please enter a valid email"
	MsgEmailInvalidFormat  = "Invalid email format"
	MsgPasswordTooShort    = "Password must be at least 8 characters"
	MsgPasswordNoDigit     = "Password must contain a number"
	MsgPasswordNoUppercase = "Password must contain an uppercase letter"
	MsgPasswordRequired    = "Password is required"
)

var (
	validate = validator.New()

	nameCharsetRe       = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)
	passwordDigitRe     = regexp.MustCompile(`\d`)
	passwordUppercaseRe = regexp.MustCompile(`[A-Z]`)
)

// ValidateRegister normalizes and checks a registration request in place.
// The name is trimmed and HTML-escaped, the email lowercased. The first
// failed check is returned as the message; ok reports whether all checks
// passed.
func ValidateRegister(req *models.RegisterRequest) (message string, ok bool) {
	name := strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	// Length and charset are checked on the submitted name, before HTML
	// escaping can inflate its length.
	switch {
	case name == "":
		return MsgNameRequired, false
	case utf8.RuneCountInString(name) < 2 || utf8.RuneCountInString(name) > 50:
		return MsgNameLength, false
	case !nameCharsetRe.MatchString(name):
		return MsgNameCharset, false
	}
	req.Name = html.EscapeString(name)

	if validate.Var(req.Email, "required,email") != nil {
		return MsgEmailInvalid, false
	}

	switch {
	case len(req.Password) < 8:
		return MsgPasswordTooShort, false
	case !passwordDigitRe.MatchString(req.Password):
		return MsgPasswordNoDigit, false
	case !passwordUppercaseRe.MatchString(req.Password):
		return MsgPasswordNoUppercase, false
	}

	return "", true
}

// ValidateLogin normalizes and checks a login request in place. The email is
// lowercased. Unlike registration, the password is merely required so that
// accounts created under older policies can still sign in.
func ValidateLogin(req *models.LoginRequest) (message string, ok bool) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if validate.Var(req.Email, "required,email") != nil {
		return MsgEmailInvalidFormat, false
	}
	if req.Password == "" {
		return MsgPasswordRequired, false
	}

	return "", true
}

// ValidateAdminLogin checks an admin login request. The admin credential
// compare is exact, so the submitted email is checked for format but never
// trimmed or lowercased.
func ValidateAdminLogin(req *models.AdminLoginRequest) (message string, ok bool) {
	if validate.Var(req.Email, "required,email") != nil {
		return MsgEmailInvalidFormat, false
	}
	if req.Password == "" {
		return MsgPasswordRequired, false
	}

	return "", true
}
