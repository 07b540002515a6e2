package rgw

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/rgwadmin/internal/logging"
)

// SHA-256 of the empty string; all admin calls are body-less GETs.
const emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// transport performs SigV4-signed requests against the RGW admin API and
// decodes JSON responses. It owns the HTTP client and therefore the
// SSL-verification toggle and the request timeout; callers own retries.
type transport struct {
	baseURL       string // scheme://host:port, no trailing slash
	adminResource string
	region        string
	creds         aws.Credentials
	signer        *v4.Signer
	httpClient    *http.Client
	logger        logging.Logger
}

func newTransport(baseURL, adminResource, region string, creds Credentials, sslVerify bool, timeout time.Duration, logger logging.Logger) *transport {
	rt := http.DefaultTransport.(*http.Transport).Clone()
	if !sslVerify {
		rt.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &transport{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		adminResource: adminResource,
		region:        region,
		creds: aws.Credentials{
			AccessKeyID:     creds.AccessKey,
			SecretAccessKey: creds.SecretKey,
		},
		signer:     v4.NewSigner(),
		httpClient: &http.Client{Transport: rt, Timeout: timeout},
		logger:     logger,
	}
}

// getJSON issues a signed GET against a subresource of the admin API
// (e.g. "realm", "config") and decodes the JSON response into out. A nil
// out discards the body.
func (t *transport) getJSON(ctx context.Context, subresource string, query url.Values, out any) error {
	u := fmt.Sprintf("%s/%s/%s", t.baseURL, t.adminResource, subresource)
	if enc := query.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if err := t.signer.SignHTTP(ctx, t.creds, req, emptyPayloadHash, "s3", t.region, time.Now().UTC()); err != nil {
		return fmt.Errorf("sign admin request: %w", err)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Error(ctx, "admin api request failed", "path", req.URL.Path, "request_id", requestID, "error", err)
		return err
	}
	defer resp.Body.Close()

	t.logger.Debug(ctx, "admin api request",
		"method", req.Method, "path", req.URL.Path,
		"request_id", requestID, "status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("admin api: GET %s: %s: %s", req.URL.Path, resp.Status, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
