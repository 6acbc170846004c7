package gateway

import (
	"time"

	"github.com/jrsteele09/employee-tracker/employee"
	"github.com/jrsteele09/employee-tracker/identity"
	"golang.org/x/oauth2"
)

// StatusResponse is the liveness probe payload.
type StatusResponse struct {
	API     string `json:"api"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SignupResult is the decoded signup payload. SessionToken is empty when
// the backend requires email confirmation before issuing a session.
type SignupResult struct {
	Message      string
	Status       string
	User         *identity.User
	SessionToken string
}

// LoginResult is the decoded login payload. Token is nil when the backend
// did not return a session.
type LoginResult struct {
	Message string
	Status  string
	User    *identity.User
	Token   *oauth2.Token
}

// wireUser is the auth payloads' user shape. These payloads spell the name
// fields forename/lastname; toUser maps them into the canonical identity
// record. This is the single normalization point.
type wireUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Forename  string `json:"forename"`
	Lastname  string `json:"lastname"`
	CreatedAt string `json:"created_at"`
}

func (w *wireUser) toUser() *identity.User {
	if w == nil {
		return nil
	}
	user := &identity.User{
		ID:        w.ID,
		Email:     w.Email,
		FirstName: w.Forename,
		LastName:  w.Lastname,
	}
	if ts, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		user.CreatedAt = ts
	}
	return user
}

// wireSession is the nested session object in the login payload.
type wireSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

func (w *wireSession) toToken() *oauth2.Token {
	if w == nil || w.AccessToken == "" {
		return nil
	}
	token := &oauth2.Token{
		AccessToken:  w.AccessToken,
		RefreshToken: w.RefreshToken,
		TokenType:    "Bearer",
	}
	if w.ExpiresAt > 0 {
		token.Expiry = time.Unix(w.ExpiresAt, 0)
	}
	return token
}

// signupResponse carries a flat session token, unlike login's nested
// object. It is null when the backend defers the session until email
// confirmation.
type signupResponse struct {
	Message string    `json:"message"`
	Status  string    `json:"status"`
	User    *wireUser `json:"user"`
	Session *string   `json:"session"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Status  string       `json:"status"`
	User    *wireUser    `json:"user"`
	Session *wireSession `json:"session"`
}

type currentUserResponse struct {
	Message string    `json:"message"`
	Status  string    `json:"status"`
	User    *wireUser `json:"user"`
}

type employeesResponse struct {
	Employees []employee.Employee `json:"employees"`
	Count     int                 `json:"count"`
}
