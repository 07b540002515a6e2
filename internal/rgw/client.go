package rgw

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/rgwadmin/internal/common"
	"github.com/dmitrijs2005/rgwadmin/internal/logging"
	"github.com/dmitrijs2005/rgwadmin/internal/rgw/config"
	"github.com/dmitrijs2005/rgwadmin/internal/rgw/frontend"
)

// Client is a ready-for-use handle over one gateway daemon's admin API,
// bound to a single host, resolved (port, ssl) pair and credential pair.
// Construct one per logical admin session; construction is cheap and safe
// to run concurrently. Callers that want a cached singleton own that cache
// themselves.
type Client struct {
	daemon    Daemon
	listener  frontend.Listener
	creds     Credentials
	transport *transport
	s3        *s3.Client
	logger    logging.Logger
}

// Option customizes client construction.
type Option func(*clientOptions)

type clientOptions struct {
	logger logging.Logger
}

// WithLogger injects a structured logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// New composes an admin client: list daemons from the pool, select exactly
// one (honoring the settings host/port override), derive port and TLS flag
// from its frontend configuration, resolve credentials, and wire the
// signed transport plus the S3 API client. The settings SSL-verification
// toggle is passed through unchanged to both HTTP clients.
func New(ctx context.Context, settings *config.Settings, pool DaemonPool, opts ...Option) (*Client, error) {
	o := clientOptions{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	daemons, err := pool.Daemons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daemons: %w", err)
	}
	if len(daemons) == 0 {
		return nil, common.ErrNoDaemons
	}

	portOverride, err := settings.PortNumber()
	if err != nil {
		return nil, err
	}
	daemon, err := selectDaemon(daemons, settings.Host, portOverride)
	if err != nil {
		return nil, err
	}
	listener, err := daemon.listener()
	if err != nil {
		return nil, err
	}
	creds, err := resolveCredentials(settings.AccessKey, settings.SecretKey, daemons)
	if err != nil {
		return nil, err
	}

	scheme := "http"
	if listener.SSL {
		scheme = "https"
	}
	endpoint := fmt.Sprintf("%s://%s:%d", scheme, daemon.Host, listener.Port)

	logger := o.logger.With("daemon", daemon.ID)
	s3c, err := newS3Client(ctx, endpoint, settings, creds)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "resolved RGW admin endpoint",
		"host", daemon.Host, "port", listener.Port, "ssl", listener.SSL,
		"ssl_verify", settings.SSLVerify)

	return &Client{
		daemon:    daemon,
		listener:  listener,
		creds:     creds,
		transport: newTransport(endpoint, settings.AdminResource, settings.Region, creds, settings.SSLVerify, settings.RequestTimeout, logger),
		s3:        s3c,
		logger:    logger,
	}, nil
}

// newS3Client builds the S3 API client pointed at the gateway itself,
// using the resolved credential pair and path-style addressing.
func newS3Client(ctx context.Context, endpoint string, settings *config.Settings, creds Credentials) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(settings.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			creds.AccessKey, creds.SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	rt := http.DefaultTransport.(*http.Transport).Clone()
	if !settings.SSLVerify {
		rt.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	cfg.HTTPClient = &http.Client{Transport: rt, Timeout: settings.RequestTimeout}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	}), nil
}

// Daemon returns the descriptor of the selected gateway daemon.
func (c *Client) Daemon() Daemon { return c.daemon }

// Endpoint returns the resolved base URL of the admin API.
func (c *Client) Endpoint() string { return c.transport.baseURL }

// Listener returns the (port, ssl) decision parsed from the daemon's
// frontend configuration.
func (c *Client) Listener() frontend.Listener { return c.listener }
