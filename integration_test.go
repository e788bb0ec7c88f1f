package unifedi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/unifedi"
	"github.com/totegamma/unifedi/client"
	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/x/oauth"
)

func jsonHandler(t *testing.T, routes map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Record not found"}`))
			return
		}
		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func TestMastodonLogin(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, map[string]string{
		"/api/v1/apps": `{"id":"563419","name":"unifedi","website":null,"redirect_uri":"urn:ietf:wg:oauth:2.0:oob","client_id":"TWhM-tNSuncnqN7DBJmoyeLnk6K3iJJ71KKXxgL1hPM","client_secret":"ZEaFUFmF0umgBX1qKJDjaU99Q31lDkOU8NutzTOoliw","vapid_key":"BCk-QqERU0q-CfYZjcuB6lnyyOYfJ2AifKqfeGIm7Z-HiTU5T9eTG5GxVA0_OH5mMlI4UkkDTpaZwozy0TzdZ2M="}`,
		"/oauth/token": `{"access_token":"ZA-Yj3aBD8U8Cm7lKUp-lm9O9BmDgdhHzDeqsY8tlL0","token_type":"Bearer","scope":"read write","created_at":1573979017}`,
	}))
	defer server.Close()

	service, err := unifedi.SetupOAuthService(client.NewClient(), core.FlavorMastodon, []core.Option{core.WithStrict()})
	require.NoError(t, err)

	ctx := context.Background()
	app, err := service.RegisterApp(ctx, server.URL, oauth.AppOptions{Name: "unifedi", Scopes: []string{"read", "write"}})
	require.NoError(t, err)
	assert.Equal(t, "TWhM-tNSuncnqN7DBJmoyeLnk6K3iJJ71KKXxgL1hPM", app.ClientID)

	authorizeURL, err := service.AuthorizeURL(ctx, server.URL, app, nil, "")
	require.NoError(t, err)
	parsed, err := url.Parse(authorizeURL)
	require.NoError(t, err)
	assert.Equal(t, "/oauth/authorize", parsed.Path)
	assert.Equal(t, app.ClientID, parsed.Query().Get("client_id"))

	token, err := service.FetchAccessToken(ctx, server.URL, app, "code")
	require.NoError(t, err)
	assert.Equal(t, "Bearer ZA-Yj3aBD8U8Cm7lKUp-lm9O9BmDgdhHzDeqsY8tlL0", client.AuthorizationHeader(token))
}

func TestFirefishLogin(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, map[string]string{
		"/api/app/create":            `{"id":"9e2c1yb3za","name":"unifedi","callbackUrl":"https://app.example/cb","permission":["read:account","write:notes"],"secret":"kY3pUw2gRZ3zYtKLvbKpDkTqUxTs8mUY","isAuthorized":false}`,
		"/api/auth/session/generate": `{"token":"0b1ff2b6-6b6e-4b2d-9e2e-8d5b6c0e51a1","url":"https://firefish.example/auth/0b1ff2b6-6b6e-4b2d-9e2e-8d5b6c0e51a1"}`,
		"/api/auth/session/userkey":  `{"accessToken":"zNyLcKDZ6jrwLi1SxvNK6D6pxFOjAtns","user":{"id":"9e2bz1x3qe","username":"alice"}}`,
	}))
	defer server.Close()

	service, err := unifedi.SetupOAuthService(client.NewClient(), core.FlavorFirefish, nil)
	require.NoError(t, err)

	ctx := context.Background()
	app, err := service.RegisterApp(ctx, server.URL, oauth.AppOptions{
		Name:        "unifedi",
		RedirectURI: "https://app.example/cb",
		Scopes:      []string{"read:account", "write:notes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "9e2c1yb3za", app.ClientID)
	assert.Equal(t, "kY3pUw2gRZ3zYtKLvbKpDkTqUxTs8mUY", app.ClientSecret)

	authorizeURL, err := service.AuthorizeURL(ctx, server.URL, app, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "https://firefish.example/auth/0b1ff2b6-6b6e-4b2d-9e2e-8d5b6c0e51a1", authorizeURL)

	token, err := service.FetchAccessToken(ctx, server.URL, app, "0b1ff2b6-6b6e-4b2d-9e2e-8d5b6c0e51a1")
	require.NoError(t, err)
	assert.Equal(t, "Firefish", token.TokenType)
	assert.Equal(t, "Bearer zNyLcKDZ6jrwLi1SxvNK6D6pxFOjAtns", client.AuthorizationHeader(token))
}

func TestLoginHTTPError(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, map[string]string{}))
	defer server.Close()

	service, err := unifedi.SetupOAuthService(client.NewClient(), core.FlavorPleroma, nil)
	require.NoError(t, err)

	_, err = service.RegisterApp(context.Background(), server.URL, oauth.AppOptions{Name: "unifedi"})
	var e *core.Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, core.KindHTTP, e.Kind)
		assert.Equal(t, http.StatusNotFound, e.StatusCode)
	}
}
