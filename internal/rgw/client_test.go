package rgw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/rgwadmin/internal/common"
	"github.com/dmitrijs2005/rgwadmin/internal/rgw/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePool struct {
	daemons []Daemon
	err     error
}

func (f fakePool) Daemons(_ context.Context) ([]Daemon, error) {
	return f.daemons, f.err
}

func testSettings() *config.Settings {
	s := &config.Settings{}
	s.LoadDefaults()
	s.AccessKey = "klausmustermann"
	s.SecretKey = "supergeheim"
	s.RequestTimeout = 5 * time.Second
	return s
}

// adminStub is an httptest-backed RGW admin API plus just enough of the
// S3 object-lock surface for the locking ops.
type adminStub struct {
	srv        *httptest.Server
	realmCalls int
	lockPuts   int
	lastAuth   string
	lastReqID  string
}

func newAdminStub(t *testing.T) *adminStub {
	t.Helper()
	stub := &adminStub{}
	stub.srv = httptest.NewServer(http.HandlerFunc(stub.handle))
	t.Cleanup(stub.srv.Close)
	return stub
}

func (s *adminStub) handle(w http.ResponseWriter, r *http.Request) {
	s.lastAuth = r.Header.Get("Authorization")
	s.lastReqID = r.Header.Get("X-Request-ID")

	switch {
	case r.URL.Path == "/admin/realm":
		s.realmCalls++
		if s.realmCalls > 1 {
			fmt.Fprint(w, `{}`)
			return
		}
		fmt.Fprint(w, `{"default_info":"51de8373-bc24-4f74-a9b7-8e9ef4cb71f7","realms":["realm1","realm2"]}`)
	case r.URL.Path == "/admin/config" && r.URL.Query().Get("type") == "zone":
		fmt.Fprint(w, `{
			"id": "a0df30ea-4b5b-4830-b143-2bedf684663d",
			"name": "zone1",
			"placement_pools": [
				{"key": "default-placement", "val": {
					"index_pool": "default.rgw.buckets.index",
					"storage_classes": {"STANDARD": {"data_pool": "default.rgw.buckets.data"}}
				}}
			]
		}`)
	case r.URL.Path == "/admin/user":
		json.NewEncoder(w).Encode(User{
			UserID:      r.URL.Query().Get("uid"),
			DisplayName: "Dummy Admin",
			Keys:        []UserKey{{AccessKey: "ak", SecretKey: "sk"}},
		})
	case r.URL.Path == "/admin/bucket" && r.URL.Query().Get("bucket") == "":
		fmt.Fprint(w, `["teuthida-0","teuthida-1"]`)
	case r.URL.Path == "/admin/bucket":
		json.NewEncoder(w).Encode(BucketStats{
			Bucket: r.URL.Query().Get("bucket"),
			Owner:  "dummy_admin",
		})
	case r.Method == http.MethodPut && r.URL.Query().Has("object-lock"):
		s.lockPuts++
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet && r.URL.Query().Has("object-lock"):
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<ObjectLockConfiguration xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
			<ObjectLockEnabled>Enabled</ObjectLockEnabled>
			<Rule><DefaultRetention><Mode>COMPLIANCE</Mode><Days>5</Days></DefaultRetention></Rule>
		</ObjectLockConfiguration>`)
	default:
		http.NotFound(w, r)
	}
}

// daemon returns a descriptor whose frontend config points at the stub.
func (s *adminStub) daemon(t *testing.T, id string) Daemon {
	t.Helper()
	u, err := url.Parse(s.srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	return Daemon{
		ID:              id,
		Host:            host,
		FrontendConfigs: []string{"beast port=" + port},
		Zone:            "zone1",
		Zonegroup:       "zonegroup1",
	}
}

func (s *adminStub) client(t *testing.T) *Client {
	t.Helper()
	c, err := New(context.Background(), testSettings(), fakePool{daemons: []Daemon{s.daemon(t, "rgw.a")}})
	require.NoError(t, err)
	return c
}

func TestNew_NoDaemons(t *testing.T) {
	_, err := New(context.Background(), testSettings(), fakePool{})
	assert.ErrorIs(t, err, common.ErrNoDaemons)
}

func TestNew_PoolError(t *testing.T) {
	boom := errors.New("orchestrator down")
	_, err := New(context.Background(), testSettings(), fakePool{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestNew_NoCredentials(t *testing.T) {
	s := testSettings()
	s.AccessKey = ""
	s.SecretKey = ""
	pool := fakePool{daemons: []Daemon{{ID: "rgw.a", Host: "h", FrontendConfigs: []string{"beast port=80"}}}}

	_, err := New(context.Background(), s, pool)
	assert.ErrorIs(t, err, common.ErrNoCredentials)
}

func TestNew_DaemonCredentialsFallback(t *testing.T) {
	s := testSettings()
	s.AccessKey = ""
	s.SecretKey = ""
	pool := fakePool{daemons: []Daemon{{
		ID: "rgw.a", Host: "h",
		FrontendConfigs: []string{"beast port=80"},
		AccessKey:       "daemon-ak", SecretKey: "daemon-sk",
	}}}

	c, err := New(context.Background(), s, pool)
	require.NoError(t, err)
	assert.Equal(t, "daemon-ak", c.creds.AccessKey)
}

func TestNew_HostPortOverrideNotFound(t *testing.T) {
	s := testSettings()
	s.Host = "172.20.0.2"
	s.Port = "7990"
	pool := fakePool{daemons: []Daemon{{ID: "rgw.a", Host: "h", FrontendConfigs: []string{"beast port=80"}}}}

	_, err := New(context.Background(), s, pool)
	assert.ErrorIs(t, err, common.ErrDaemonNotFound)
}

func TestNew_InvalidPortSetting(t *testing.T) {
	s := testSettings()
	s.Port = "eighty"
	pool := fakePool{daemons: []Daemon{{ID: "rgw.a", Host: "h", FrontendConfigs: []string{"beast port=80"}}}}

	_, err := New(context.Background(), s, pool)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestNew_ResolvesListenerFromFrontendConfig(t *testing.T) {
	pool := fakePool{daemons: []Daemon{{
		ID: "rgw.a", Host: "gw.example.org",
		FrontendConfigs: []string{"beast ssl_endpoint=[::1]:8443 endpoint=192.0.2.3:80"},
	}}}

	c, err := New(context.Background(), testSettings(), pool)
	require.NoError(t, err)
	assert.Equal(t, 8443, c.Listener().Port)
	assert.True(t, c.Listener().SSL)
	assert.Equal(t, "https://gw.example.org:8443", c.Endpoint())
}

func TestNew_SSLVerifyToggle(t *testing.T) {
	pool := fakePool{daemons: []Daemon{{
		ID: "rgw.a", Host: "gw.example.org",
		FrontendConfigs: []string{"beast ssl_port=443"},
	}}}

	verify := testSettings()
	c, err := New(context.Background(), verify, pool)
	require.NoError(t, err)
	rt := c.transport.httpClient.Transport.(*http.Transport)
	assert.True(t, rt.TLSClientConfig == nil || !rt.TLSClientConfig.InsecureSkipVerify)

	noVerify := testSettings()
	noVerify.SSLVerify = false
	c, err = New(context.Background(), noVerify, pool)
	require.NoError(t, err)
	rt = c.transport.httpClient.Transport.(*http.Transport)
	require.NotNil(t, rt.TLSClientConfig)
	assert.True(t, rt.TLSClientConfig.InsecureSkipVerify)
}

func TestClient_Realms(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	realms, err := c.Realms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"realm1", "realm2"}, realms)

	// A gateway without multisite answers with an empty document.
	realms, err = c.Realms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, realms)
}

func TestClient_RequestsAreSignedAndCorrelated(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	_, err := c.Realms(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stub.lastAuth, "AWS4-HMAC-SHA256"), "got %q", stub.lastAuth)
	assert.Contains(t, stub.lastAuth, "klausmustermann")
	assert.NotEmpty(t, stub.lastReqID)
}

func TestClient_PlacementTargets(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	out, err := c.PlacementTargets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &PlacementTargetsOutput{
		Zonegroup: "zonegroup1",
		Targets: []PlacementTarget{
			{Name: "default-placement", DataPool: "default.rgw.buckets.data"},
		},
	}, out)
}

func TestClient_UserInfo(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	u, err := c.UserInfo(context.Background(), "dummy_admin")
	require.NoError(t, err)
	assert.Equal(t, "dummy_admin", u.UserID)
	require.Len(t, u.Keys, 1)
}

func TestClient_ListBucketsAndStats(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	names, err := c.ListBuckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"teuthida-0", "teuthida-1"}, names)

	stats, err := c.GetBucketStats(context.Background(), "teuthida-0")
	require.NoError(t, err)
	assert.Equal(t, "teuthida-0", stats.Bucket)
	assert.Equal(t, "dummy_admin", stats.Owner)
}

func TestClient_SetBucketLocking(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	err := c.SetBucketLocking(context.Background(), "teuthida-0", "Compliance", "1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.lockPuts)
}

func TestClient_SetBucketLocking_ValidationBlocksRequest(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	err := c.SetBucketLocking(context.Background(), "teuthida-0", "FAKE_MODE", "1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, stub.lockPuts, "invalid parameters must never reach the gateway")
}

func TestClient_GetBucketLocking(t *testing.T) {
	stub := newAdminStub(t)
	c := stub.client(t)

	lock, err := c.GetBucketLocking(context.Background(), "teuthida-0")
	require.NoError(t, err)
	assert.True(t, lock.Enabled)
	assert.Equal(t, "COMPLIANCE", lock.Mode)
	assert.Equal(t, int32(5), lock.Days)
}
