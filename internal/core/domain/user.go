package domain

import "errors"

// User models a registered storefront account. The password hash never
// leaves the service layer in API responses.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

var ErrDuplicateUser = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

var ErrMissingToken = errors.New("no token, authorization denied")
var ErrInvalidToken = errors.New("token is not valid")
var ErrTokenExpired = errors.New("token has expired")
