package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/sortiz4/muon/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "muon.json"

	// DefaultAddr is the default listen address for the page server.
	DefaultAddr = ":8080"

	// DefaultReadTimeout is the default server read timeout.
	DefaultReadTimeout = "5s"

	// DefaultLang is the default document language.
	DefaultLang = "en"

	// DefaultDocType is the default document type declaration.
	DefaultDocType = "html"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "muon"

	// DefaultMetricsPath is the default metrics endpoint.
	DefaultMetricsPath = "/metrics"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "muon"

	// DefaultOutput is the default publish directory.
	DefaultOutput = "dist"

	// DefaultRegion is the default S3 region.
	DefaultRegion = "us-east-1"
)

// Config represents the complete muon.json configuration.
type Config struct {
	// Server contains page server configuration.
	Server ServerConfig `json:"server"`

	// Document contains the defaults for generated documents.
	Document DocumentConfig `json:"document"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing"`

	// Publish contains output configuration for rendered pages.
	Publish PublishConfig `json:"publish"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains page server settings.
type ServerConfig struct {
	// Addr is the host:port to listen on.
	Addr string `json:"addr,omitempty"`

	// ReadTimeout bounds reading a request (e.g., "5s").
	ReadTimeout string `json:"readTimeout,omitempty"`
}

// DocumentConfig contains document defaults.
type DocumentConfig struct {
	// Lang is the lang attribute of the html element.
	Lang string `json:"lang,omitempty"`

	// DocType is the document type declaration.
	DocType string `json:"doctype,omitempty"`

	// Title is the default page title.
	Title string `json:"title,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled turns on render metrics and the metrics endpoint.
	Enabled bool `json:"enabled"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`

	// Path is the URL path of the metrics endpoint.
	Path string `json:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled turns on a span per render.
	Enabled bool `json:"enabled"`

	// TracerName is the name passed to the tracer provider.
	TracerName string `json:"tracerName,omitempty"`
}

// PublishConfig contains publish settings.
type PublishConfig struct {
	// Dir is the local output directory.
	Dir string `json:"dir,omitempty"`

	// Bucket is the S3 bucket. If set, pages are uploaded instead of written.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the S3 region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (e.g., a local MinIO).
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        DefaultAddr,
			ReadTimeout: DefaultReadTimeout,
		},
		Document: DocumentConfig{
			Lang:    DefaultLang,
			DocType: DefaultDocType,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Publish: PublishConfig{
			Dir:    DefaultOutput,
			Region: DefaultRegion,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for muon.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No muon.json found in " + filepath.Dir(path)).
				WithSuggestion("Create muon.json or run without --config to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse muon.json: " + err.Error()).
			WithSuggestion("Check that muon.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = DefaultReadTimeout
	}

	if c.Document.Lang == "" {
		c.Document.Lang = DefaultLang
	}
	if c.Document.DocType == "" {
		c.Document.DocType = DefaultDocType
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}

	if c.Publish.Dir == "" {
		c.Publish.Dir = DefaultOutput
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return errors.New("E122").
			WithDetail("server.addr must be host:port, got " + c.Server.Addr)
	}
	if d, err := time.ParseDuration(c.Server.ReadTimeout); err != nil || d < 0 {
		return errors.New("E122").
			WithDetail("server.readTimeout must be a non-negative duration, got " + c.Server.ReadTimeout)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return errors.New("E122").
			WithDetail("metrics.namespace must not be empty")
	}
	if c.Metrics.Enabled && (c.Metrics.Path == "" || c.Metrics.Path[0] != '/') {
		return errors.New("E122").
			WithDetail("metrics.path must start with /")
	}
	return nil
}

// ReadTimeout returns the parsed server read timeout, or zero if invalid.
func (c *Config) ReadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil {
		return 0
	}
	return d
}

// OutputPath returns the absolute path to the publish directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Publish.Dir) {
		return c.Publish.Dir
	}
	return filepath.Join(c.Dir(), c.Publish.Dir)
}

// UsesS3 reports whether pages are published to a bucket.
func (c *Config) UsesS3() bool {
	return c.Publish.Bucket != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing muon.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No muon.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads muon.json from the project containing dir, falling
// back to defaults when there is none.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		if errors.HasCode(err, "E141") {
			return New(), nil
		}
		return nil, err
	}
	return Load(root)
}
