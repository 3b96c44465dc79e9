package types

import (
	"errors"
	"net/url"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the character listing fetched when no endpoint is
// configured.
const DefaultEndpoint = "https://rickandmortyapi.com/api/character"

// Config holds data source selection, table defaults and logging settings.
type Config struct {
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
	Source   string `json:"source" yaml:"source" mapstructure:"source"`
	PageSize int    `json:"page_size" yaml:"page_size" mapstructure:"page_size"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFile  string `json:"log_file" yaml:"log_file" mapstructure:"log_file"`

	// ExportDir is where relative export paths are written.
	ExportDir string `json:"export_dir" yaml:"export_dir" mapstructure:"export_dir"`
}

// Config validation errors.
var (
	ErrEndpointInvalid = errors.New("endpoint must be an absolute http(s) URL")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Source, when set, takes precedence over
// Endpoint and is not checked here; a missing file surfaces as ErrFetch.
func (c Config) Validate() error {
	if c.Source == "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return ErrEndpointInvalid
		}
	}
	if !ValidPageSize(c.PageSize) {
		return ErrInvalidPageSize
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return ErrLogLevelUnknown
		}
	}
	return nil
}
