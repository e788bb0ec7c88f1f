package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/totegamma/unifedi"
	"github.com/totegamma/unifedi/client"
	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/x/oauth"
	"github.com/totegamma/unifedi/x/sink"
	"github.com/totegamma/unifedi/x/util"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "cli"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

const usage = `usage: unifedi <command> [flags]

commands:
  decode -entity <name> [file]   decode a response body (stdin when no file)
  register                       register the configured app
  authorize -state <state>       print the authorization URL
  token -code <code>             exchange an authorization code
`

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred shutdowns flush first.
func run() int {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stderr, nil)}
	slog.SetDefault(slog.New(handler))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	config := util.Config{}
	configPath := os.Getenv("UNIFEDI_CONFIG")
	if configPath == "" {
		configPath = "/etc/unifedi/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		return 1
	}

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "unifedi", util.GetFullVersion())
		if err != nil {
			panic(err)
		}
		defer cleanup()
	}

	registry := prometheus.NewRegistry()
	promSink, err := sink.NewPrometheusSink(registry)
	if err != nil {
		panic(err)
	}
	if config.Server.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			err := http.ListenAndServe(config.Server.MetricsAddr, mux)
			if err != nil {
				slog.Error("metrics endpoint stopped", slog.String("error", err.Error()))
			}
		}()
	}

	flavor, err := config.Instance.ParseFlavor()
	if err != nil {
		panic(err)
	}

	opts := append(config.Instance.Options(), core.WithWarningSink(sink.Multi{sink.NewSlogSink(nil), promSink}))

	ctx, cancel := context.WithTimeout(context.Background(), config.Server.Timeout+5*time.Second)
	defer cancel()

	var result any
	args := os.Args[2:]
	switch os.Args[1] {
	case "decode":
		result, err = runDecode(flavor, opts, args)
	case "register":
		result, err = runRegister(ctx, config, flavor, opts)
	case "authorize":
		result, err = runAuthorize(ctx, config, flavor, opts, args)
	case "token":
		result, err = runToken(ctx, config, flavor, opts, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	if err != nil {
		slog.ErrorContext(ctx, "command failed",
			slog.String("command", os.Args[1]),
			slog.String("kind", core.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		return 1
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		slog.ErrorContext(ctx, "failed to write result", slog.String("error", err.Error()))
		return 1
	}
	return 0
}

func runDecode(flavor core.Flavor, opts []core.Option, args []string) (any, error) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	entity := fs.String("entity", "status", "entity to decode: "+strings.Join(unifedi.Entities, ", "))
	fs.Parse(args)

	var body []byte
	var err error
	if fs.NArg() > 0 {
		body, err = os.ReadFile(fs.Arg(0))
	} else {
		body, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, core.NewOtherError("failed to read input", err)
	}

	decoder, err := unifedi.SetupDecoder(flavor, opts)
	if err != nil {
		return nil, err
	}
	return unifedi.DecodeEntity(decoder, *entity, body)
}

func newClient(config util.Config) client.Client {
	return client.NewClient(
		client.WithUserAgent(util.UserAgent()),
		client.WithTimeout(config.Server.Timeout),
	)
}

func appOptions(config util.Config) oauth.AppOptions {
	return oauth.AppOptions{
		Name:        config.Instance.AppName,
		Website:     config.Instance.Website,
		RedirectURI: config.Instance.RedirectURI,
		Scopes:      config.Instance.Scopes,
	}
}

func configuredApp(config util.Config) (core.AppData, error) {
	if config.Instance.ClientID == "" || config.Instance.ClientSecret == "" {
		return core.AppData{}, core.NewOwnError("clientID and clientSecret must be configured", nil)
	}
	app := core.AppData{
		ClientID:     config.Instance.ClientID,
		ClientSecret: config.Instance.ClientSecret,
		Scopes:       config.Instance.Scopes,
	}
	if config.Instance.RedirectURI != "" {
		app.RedirectURI = &config.Instance.RedirectURI
	}
	return app, nil
}

func runRegister(ctx context.Context, config util.Config, flavor core.Flavor, opts []core.Option) (any, error) {
	service, err := unifedi.SetupOAuthService(newClient(config), flavor, opts)
	if err != nil {
		return nil, err
	}

	app, err := service.RegisterApp(ctx, config.Instance.BaseURL, appOptions(config))
	if err != nil {
		return nil, err
	}

	// printed on purpose: the operator stores these in the config
	return map[string]any{
		"clientID":     app.ClientID,
		"clientSecret": app.ClientSecret,
		"redirectURI":  app.RedirectURI,
		"scopes":       app.Scopes,
	}, nil
}

func runAuthorize(ctx context.Context, config util.Config, flavor core.Flavor, opts []core.Option, args []string) (any, error) {
	fs := flag.NewFlagSet("authorize", flag.ExitOnError)
	state := fs.String("state", "", "opaque state echoed back to the redirect URI")
	fs.Parse(args)

	app, err := configuredApp(config)
	if err != nil {
		return nil, err
	}

	service, err := unifedi.SetupOAuthService(newClient(config), flavor, opts)
	if err != nil {
		return nil, err
	}

	authorizeURL, err := service.AuthorizeURL(ctx, config.Instance.BaseURL, app, config.Instance.Scopes, *state)
	if err != nil {
		return nil, err
	}
	return map[string]string{"url": authorizeURL}, nil
}

func runToken(ctx context.Context, config util.Config, flavor core.Flavor, opts []core.Option, args []string) (any, error) {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	code := fs.String("code", "", "authorization code or Firefish session token")
	fs.Parse(args)

	if *code == "" {
		return nil, core.NewOwnError("-code is required", nil)
	}

	app, err := configuredApp(config)
	if err != nil {
		return nil, err
	}

	service, err := unifedi.SetupOAuthService(newClient(config), flavor, opts)
	if err != nil {
		return nil, err
	}

	token, err := service.FetchAccessToken(ctx, config.Instance.BaseURL, app, *code)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"accessToken":   token.AccessToken,
		"tokenType":     token.TokenType,
		"scope":         token.Scope,
		"authorization": client.AuthorizationHeader(token),
	}, nil
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
