// Package validators holds the ordered field-check chains applied to
// authentication requests at the HTTP boundary. A chain runs its checks in
// declaration order and stops at the first failure, so the client always
// receives exactly one message per attempt.
package validators
