package oauth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/unifedi/client"
	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/internal/wire"
)

var tracer = otel.Tracer("oauth")

const outOfBand = "urn:ietf:wg:oauth:2.0:oob"

// AppOptions describes the application to register.
type AppOptions struct {
	Name        string
	Website     string
	RedirectURI string // out-of-band when empty
	Scopes      []string
}

// Service runs the app registration, authorization and token exchange steps
// against one flavor.
type Service interface {
	RegisterApp(ctx context.Context, baseURL string, opts AppOptions) (core.AppData, error)
	AuthorizeURL(ctx context.Context, baseURL string, app core.AppData, scopes []string, state string) (string, error)
	FetchAccessToken(ctx context.Context, baseURL string, app core.AppData, code string) (core.TokenData, error)
}

type service struct {
	client  client.Client
	decoder core.Decoder
}

// NewService creates a new oauth service for the flavor of decoder
func NewService(client client.Client, decoder core.Decoder) Service {
	return &service{client: client, decoder: decoder}
}

// RegisterApp registers a client application and returns its credentials
func (s *service) RegisterApp(ctx context.Context, baseURL string, opts AppOptions) (core.AppData, error) {
	ctx, span := tracer.Start(ctx, "OAuth.Service.RegisterApp")
	defer span.End()

	span.SetAttributes(attribute.String("flavor", s.decoder.Flavor().DisplayName()))

	redirectURI := opts.RedirectURI
	if redirectURI == "" {
		redirectURI = outOfBand
	}

	var endpoint string
	var payload any
	switch s.decoder.Flavor() {
	case core.FlavorFirefish:
		endpoint = "/api/app/create"
		payload = map[string]any{
			"name":        opts.Name,
			"description": opts.Website,
			"permission":  nonNil(opts.Scopes),
			"callbackUrl": redirectURI,
		}
	default:
		endpoint = "/api/v1/apps"
		body := map[string]any{
			"client_name":   opts.Name,
			"redirect_uris": redirectURI,
			"scopes":        strings.Join(opts.Scopes, " "),
		}
		if opts.Website != "" {
			body["website"] = opts.Website
		}
		payload = body
	}

	resp, err := s.post(ctx, baseURL+endpoint, payload, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "failed to register app", slog.String("error", err.Error()), slog.String("module", "oauth"))
		return core.AppData{}, err
	}

	app, err := s.decoder.AppData(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "failed to decode app registration", slog.String("error", err.Error()), slog.String("module", "oauth"))
		return core.AppData{}, err
	}

	// Pleroma echoes neither scopes nor, on older versions, the redirect uri.
	if app.Scopes == nil {
		app.Scopes = opts.Scopes
	}
	if app.RedirectURI == nil {
		app.RedirectURI = &redirectURI
	}

	slog.InfoContext(ctx, "app registered",
		slog.String("client_id", app.ClientID),
		slog.String("flavor", s.decoder.Flavor().DisplayName()),
		slog.String("module", "oauth"),
	)

	return app, nil
}

// AuthorizeURL returns the URL the user opens to grant access. On Firefish
// this opens an auth session; its token is the code for FetchAccessToken.
func (s *service) AuthorizeURL(ctx context.Context, baseURL string, app core.AppData, scopes []string, state string) (string, error) {
	ctx, span := tracer.Start(ctx, "OAuth.Service.AuthorizeURL")
	defer span.End()

	if s.decoder.Flavor() == core.FlavorFirefish {
		return s.generateSession(ctx, baseURL, app)
	}

	u, err := url.Parse(baseURL + "/oauth/authorize")
	if err != nil {
		span.RecordError(err)
		return "", core.NewOtherError("invalid base url", errors.WithStack(err))
	}

	redirectURI := outOfBand
	if app.RedirectURI != nil {
		redirectURI = *app.RedirectURI
	}
	if scopes == nil {
		scopes = app.Scopes
	}

	query := url.Values{}
	query.Set("client_id", app.ClientID)
	query.Set("response_type", "code")
	query.Set("redirect_uri", redirectURI)
	if len(scopes) > 0 {
		query.Set("scope", strings.Join(scopes, " "))
	}
	if state != "" {
		query.Set("state", state)
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

type session struct {
	Token *string `json:"token"`
	URL   *string `json:"url"`
}

func (s *service) generateSession(ctx context.Context, baseURL string, app core.AppData) (string, error) {
	ctx, span := tracer.Start(ctx, "OAuth.Service.generateSession")
	defer span.End()

	resp, err := s.post(ctx, baseURL+"/api/auth/session/generate", map[string]string{"appSecret": app.ClientSecret}, false)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to generate auth session", slog.String("error", err.Error()), slog.String("module", "oauth"))
		return "", err
	}

	var sess session
	if err := wire.Decode(resp.Body, &sess, core.NewOptions(), "session"); err != nil {
		span.RecordError(err)
		return "", err
	}
	sessionURL, err := wire.Required("session", "url", sess.URL)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return sessionURL, nil
}

// FetchAccessToken exchanges an authorization code (a session token on Firefish) for an access token
func (s *service) FetchAccessToken(ctx context.Context, baseURL string, app core.AppData, code string) (core.TokenData, error) {
	ctx, span := tracer.Start(ctx, "OAuth.Service.FetchAccessToken")
	defer span.End()

	var endpoint string
	var payload any
	switch s.decoder.Flavor() {
	case core.FlavorFirefish:
		endpoint = "/api/auth/session/userkey"
		payload = map[string]string{
			"appSecret": app.ClientSecret,
			"token":     code,
		}
	default:
		redirectURI := outOfBand
		if app.RedirectURI != nil {
			redirectURI = *app.RedirectURI
		}
		endpoint = "/oauth/token"
		body := map[string]string{
			"grant_type":    "authorization_code",
			"client_id":     app.ClientID,
			"client_secret": app.ClientSecret,
			"redirect_uri":  redirectURI,
			"code":          code,
		}
		if len(app.Scopes) > 0 {
			body["scope"] = strings.Join(app.Scopes, " ")
		}
		payload = body
	}

	resp, err := s.post(ctx, baseURL+endpoint, payload, false)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "failed to fetch access token", slog.String("error", err.Error()), slog.String("module", "oauth"))
		return core.TokenData{}, err
	}

	token, err := s.decoder.TokenData(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "failed to decode token response", slog.String("error", err.Error()), slog.String("module", "oauth"))
		return core.TokenData{}, err
	}

	if token.Scope != nil && len(app.Scopes) > 0 {
		missing := core.ParseScopes(*token.Scope).Missing(core.NewScopes(app.Scopes))
		if len(missing) > 0 {
			span.SetAttributes(attribute.StringSlice("missing_scopes", missing))
			slog.WarnContext(ctx, "token grants fewer scopes than requested",
				slog.String("missing", strings.Join(missing, " ")),
				slog.String("module", "oauth"),
			)
		}
	}

	slog.InfoContext(ctx, "access token issued",
		slog.String("client_id", app.ClientID),
		slog.String("token_type", token.TokenType),
		slog.String("module", "oauth"),
	)

	return token, nil
}

func (s *service) post(ctx context.Context, endpoint string, payload any, idempotent bool) (client.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return client.Response{}, core.NewOwnError("failed to encode request", errors.WithStack(err))
	}

	return s.client.Do(ctx, client.Request{
		Method:     http.MethodPost,
		URL:        endpoint,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       body,
		Idempotent: idempotent,
	})
}

func nonNil(scopes []string) []string {
	if scopes == nil {
		return []string{}
	}
	return scopes
}
