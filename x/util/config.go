package util

import (
	"os"
	"strings"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/totegamma/unifedi/core"
)

const defaultTimeout = 10 * time.Second

// Config is unifedi base configuration
type Config struct {
	Server   Server   `yaml:"server"`
	Instance Instance `yaml:"instance"`
}

type Server struct {
	TraceEndpoint string        `yaml:"traceEndpoint"`
	EnableTrace   bool          `yaml:"enableTrace"`
	MetricsAddr   string        `yaml:"metricsAddr"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Instance is the server the CLI talks to
type Instance struct {
	Flavor       string   `yaml:"flavor"`
	BaseURL      string   `yaml:"baseURL"`
	Strict       bool     `yaml:"strict"`
	AppName      string   `yaml:"appName"`
	Website      string   `yaml:"website"`
	RedirectURI  string   `yaml:"redirectURI"`
	Scopes       []string `yaml:"scopes"`
	ClientID     string   `yaml:"clientID"`
	ClientSecret string   `yaml:"clientSecret"`
}

// Load loads unifedi config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open configuration file")
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(c)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration file")
	}

	if c.Server.Timeout <= 0 {
		c.Server.Timeout = defaultTimeout
	}
	c.Instance.BaseURL = strings.TrimRight(c.Instance.BaseURL, "/")
	if c.Instance.AppName == "" {
		c.Instance.AppName = "unifedi"
	}

	if _, err := c.Instance.ParseFlavor(); err != nil {
		return errors.Wrap(err, "invalid instance flavor")
	}

	return nil
}

// ParseFlavor resolves the configured flavor name
func (i Instance) ParseFlavor() (core.Flavor, error) {
	return core.ParseFlavor(strings.ToLower(i.Flavor))
}

// Options returns the decoder options the instance asks for
func (i Instance) Options() []core.Option {
	if i.Strict {
		return []core.Option{core.WithStrict()}
	}
	return nil
}
