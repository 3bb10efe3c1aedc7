package stability

import (
	"errors"
	"net/http"
	"strings"
)

const (
	// DefaultHost is the default Stability API gateway host.
	DefaultHost = "grpc.stability.ai:443"

	// DefaultEngine is the default generation engine.
	DefaultEngine = "stable-diffusion-xl-1024-v1-0"

	// defaultUserAgent identifies this client on the wire.
	defaultUserAgent = "sdxlgen-stability-go/1.0"
)

// Client is the Stability API client.
//
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	// Generation provides text-to-image generation operations.
	Generation *GenerationService

	// Engines provides engine listing operations.
	Engines *EngineService

	// User provides account operations.
	User *UserService

	config *clientConfig
	http   *httpClient
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey     string
	host       string
	engine     string
	userAgent  string
	httpClient *http.Client
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithHost sets a custom gateway host.
//
// A bare host such as "grpc.stability.ai:443" is dialed over HTTPS. A host
// with an explicit scheme ("http://127.0.0.1:8080") is used verbatim, which
// is how tests point the client at a local fake.
func WithHost(host string) Option {
	return func(c *clientConfig) {
		c.host = host
	}
}

// WithEngine sets the generation engine used for text-to-image requests.
func WithEngine(engine string) Option {
	return func(c *clientConfig) {
		c.engine = engine
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithUserAgent sets a custom User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// NewClient creates a new Stability API client.
//
// The apiKey is required and can be obtained from the DreamStudio account
// page. An empty key is rejected here so that a missing credential surfaces
// at construction time rather than on the first generation call.
//
// Example:
//
//	client, err := stability.NewClient(os.Getenv("STABILITY_KEY"))
//	client, err := stability.NewClient(key, stability.WithEngine("stable-diffusion-v1-6"))
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("stability: api key is required")
	}

	cfg := &clientConfig{
		apiKey:    apiKey,
		host:      DefaultHost,
		engine:    DefaultEngine,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		// No Timeout on purpose. A generation call is a single attempt
		// that runs for as long as the provider needs; cancellation, if
		// any, comes from the caller's context.
		cfg.httpClient = &http.Client{}
	}

	c := &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}

	// Initialize services
	c.Generation = newGenerationService(c)
	c.Engines = newEngineService(c)
	c.User = newUserService(c)

	return c, nil
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.config.apiKey
}

// Host returns the configured gateway host.
func (c *Client) Host() string {
	return c.config.host
}

// Engine returns the configured generation engine.
func (c *Client) Engine() string {
	return c.config.engine
}
