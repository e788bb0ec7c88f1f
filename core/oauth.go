package core

import (
	"fmt"
	"time"
)

// AppData is a registered OAuth application.
type AppData struct {
	ID           string   `json:"id"` // server assigned id, opaque
	Name         string   `json:"name"`
	Website      *string  `json:"website,omitempty"`
	RedirectURI  *string  `json:"redirect_uri,omitempty"`
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	Scopes       []string `json:"scopes"`
}

// String redacts the client secret.
func (a AppData) String() string {
	return fmt.Sprintf("AppData{ID:%s Name:%s ClientID:%s ClientSecret:[REDACTED]}", a.ID, a.Name, a.ClientID)
}

// GoString redacts the client secret for %#v as well.
func (a AppData) GoString() string {
	return a.String()
}

// TokenData is the result of a token exchange.
type TokenData struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"` // "Bearer" or a flavor display name
	RefreshToken *string    `json:"refresh_token,omitempty"`
	Scope        *string    `json:"scope,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	ExpiresIn    *int64     `json:"expires_in,omitempty"`
}

func (t TokenData) String() string {
	return fmt.Sprintf("TokenData{TokenType:%s AccessToken:[REDACTED]}", t.TokenType)
}

func (t TokenData) GoString() string {
	return t.String()
}
