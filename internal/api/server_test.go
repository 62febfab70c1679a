package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bskybridge/internal/api"
	"bskybridge/internal/api/handler/v1handler"
	"bskybridge/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1}))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestNewServer_Routes(t *testing.T) {
	ts := newTestServer(t)

	res, _ := get(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res, body := get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "/batches")

	res, _ = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, ts.URL+"/v1/deliveries")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestNewServer_RequiresPublicKey(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{},
	})
	require.Error(t, err)
}

func TestNewMeterProvider(t *testing.T) {
	mp, err := api.NewMeterProvider()
	require.NoError(t, err)
	require.NotNil(t, mp.Meter("test"))
	require.NoError(t, mp.Shutdown(context.Background()))
}
