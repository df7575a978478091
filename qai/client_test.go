package qai

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaoqingyang/qingcloud-sdk-go/signature"
)

const (
	testAccessKey = "QYACCESSKEYIDEXAMPLE"
	testSecretKey = "SECRETACCESSKEYEXAMPLE"
	testZone      = "pek3a"
)

// verifySignature recomputes the request signature the way the platform
// does: split the raw query at the signature parameter, rebuild the
// string-to-sign, and compare HMACs. Runs inside handler goroutines, so
// it reports rather than fails.
func verifySignature(r *http.Request) bool {
	raw := r.URL.RawQuery
	idx := strings.LastIndex(raw, "&"+signature.ParamSignature+"=")
	if idx < 0 {
		return false
	}
	paramPart := raw[:idx]
	escaped := raw[idx+len("&"+signature.ParamSignature+"="):]

	provided, err := url.QueryUnescape(escaped)
	if err != nil {
		return false
	}

	path := r.URL.Path
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	stringToSign := r.Method + "\n" + path + "\n" + paramPart + "\n" + signature.EmptyBodyMD5
	mac := hmac.New(sha256.New, []byte(testSecretKey))
	mac.Write([]byte(stringToSign))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(provided))
}

// newTestClient points a Client at the given test server.
func newTestClient(t *testing.T, ts *httptest.Server, timeout time.Duration) *Client {
	t.Helper()

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return NewClient(ClientConfig{
		Credentials: signature.Credentials{AccessKeyID: testAccessKey, SecretKey: testSecretKey},
		Zone:        testZone,
		Host:        u.Hostname(),
		Port:        port,
		Protocol:    u.Scheme,
		Timeout:     timeout,
		Logger:      zerolog.Nop(),
	})
}

func TestSendRequestSignsAndDispatches(t *testing.T) {
	var gotChannel, gotRequestID string
	var signatureOK bool

	router := chi.NewRouter()
	router.Get(WorkGroupPath, func(w http.ResponseWriter, r *http.Request) {
		gotChannel = r.Header.Get(ChannelHeader)
		gotRequestID = r.Header.Get(RequestIDHeader)
		signatureOK = verifySignature(r)

		assert.Equal(t, testAccessKey, r.URL.Query().Get("access_key_id"))
		assert.Equal(t, testZone, r.URL.Query().Get("zone"))

		w.Write([]byte(`{"work_group":"wg-1"}`))
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	client := newTestClient(t, ts, 2*time.Second)
	resp, err := client.GetUserInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, `{"work_group":"wg-1"}`, resp)
	assert.Equal(t, ChannelAPI, gotChannel)
	assert.NotEmpty(t, gotRequestID)
	assert.True(t, signatureOK, "server-side signature recomputation must match")
}

func TestSendRequestPassesThroughErrorBodies(t *testing.T) {
	router := chi.NewRouter()
	router.Get(WorkGroupPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"signature mismatch"}`))
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	client := newTestClient(t, ts, 2*time.Second)
	resp, err := client.GetUserInfo(context.Background())

	// The dispatcher does not interpret status codes; the body is
	// returned as-is for the caller to inspect.
	require.NoError(t, err)
	assert.Equal(t, `{"error":"signature mismatch"}`, resp)
}

func TestGetTrainsSignedListParams(t *testing.T) {
	var signatureOK bool
	var gotStatus []string

	router := chi.NewRouter()
	router.Get("/api/ns/ALL/trains/", func(w http.ResponseWriter, r *http.Request) {
		signatureOK = verifySignature(r)
		gotStatus = r.URL.Query()["status"]
		w.Write([]byte(`{"trains":[]}`))
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	client := newTestClient(t, ts, 2*time.Second)
	_, err := client.GetTrains(context.Background(), GetTrainsInput{
		Status: []string{"running", "pending"},
	})
	require.NoError(t, err)

	assert.True(t, signatureOK)
	// List members are sorted ascending on the wire.
	assert.Equal(t, []string{"pending", "running"}, gotStatus)
}

func TestShareResourceGroupPostsJSONBody(t *testing.T) {
	var signatureOK bool
	var gotBody ShareResourceGroupInput
	var gotContentType string

	router := chi.NewRouter()
	router.Post(ShareResourceGroupPath, func(w http.ResponseWriter, r *http.Request) {
		signatureOK = verifySignature(r)
		gotContentType = r.Header.Get("Content-Type")

		payload, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(payload, &gotBody))

		w.Write([]byte(`{"ret_code":0}`))
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	client := newTestClient(t, ts, 2*time.Second)
	input := ShareResourceGroupInput{
		RGID:         "rg-abc123",
		IsAll:        0,
		ShareUserIDs: []string{"usr-1", "usr-2"},
	}
	resp, err := client.ShareResourceGroup(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, `{"ret_code":0}`, resp)
	assert.True(t, signatureOK)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, input, gotBody)
}

func TestRemoveSharedResourceGroupDeletes(t *testing.T) {
	var signatureOK bool
	var gotIDs []string

	router := chi.NewRouter()
	router.Delete(ShareResourceGroupPath, func(w http.ResponseWriter, r *http.Request) {
		signatureOK = verifySignature(r)
		gotIDs = r.URL.Query()["share_user_ids"]
		w.Write([]byte(`{"ret_code":0}`))
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	client := newTestClient(t, ts, 2*time.Second)
	_, err := client.RemoveSharedResourceGroup(context.Background(), "rg-abc123", 0, []string{"usr-2", "usr-1"})
	require.NoError(t, err)

	assert.True(t, signatureOK)
	assert.Equal(t, []string{"usr-1", "usr-2"}, gotIDs)
}

func TestSendRequestTimeout(t *testing.T) {
	router := chi.NewRouter()
	router.Get(WorkGroupPath, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	client := newTestClient(t, ts, 50*time.Millisecond)
	_, err := client.GetUserInfo(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.MethodGet, reqErr.Method)
	assert.Equal(t, WorkGroupPath, reqErr.Path)
}

func TestSendRequestTransportFailure(t *testing.T) {
	// A server that is already closed refuses connections.
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	client := newTestClient(t, ts, time.Second)
	_, err := client.GetUserInfo(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSendRequestUnsupportedMethod(t *testing.T) {
	client := NewClient(ClientConfig{
		Credentials: signature.Credentials{AccessKeyID: testAccessKey, SecretKey: testSecretKey},
		Zone:        testZone,
	})

	_, err := client.SendRequest(context.Background(), http.MethodPut, "/api/workgroup/", nil, nil, nil)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestSendRequestPropagatesSigningErrors(t *testing.T) {
	client := NewClient(ClientConfig{
		Credentials: signature.Credentials{AccessKeyID: testAccessKey, SecretKey: testSecretKey},
		Zone:        testZone,
	})

	params := signature.Params{"bad": {}}
	_, err := client.SendRequest(context.Background(), http.MethodGet, "/api/workgroup/", params, nil, nil)
	assert.ErrorIs(t, err, signature.ErrInvalidParameterKind)
}

func TestTrainsMetricsRequiresResourceIDs(t *testing.T) {
	client := NewClient(ClientConfig{
		Credentials: signature.Credentials{AccessKeyID: testAccessKey, SecretKey: testSecretKey},
		Zone:        testZone,
	})

	_, err := client.TrainsMetrics(context.Background(), NamespaceAll, nil)
	assert.ErrorIs(t, err, ErrMissingResourceIDs)
}

func TestDefaultClientConfig(t *testing.T) {
	cfg := DefaultClientConfig()
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultProtocol, cfg.Protocol)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}
