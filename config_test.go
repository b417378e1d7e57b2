package orggraph_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgtool/orggraph"
)

func TestLoadConfig_fromEnv(t *testing.T) {
	t.Setenv("ORGGRAPH_ENDPOINT", "https://mo.example.org/graphql/v22")
	t.Setenv("ORGGRAPH_AUTH_TOKEN", "secret")
	t.Setenv("ORGGRAPH_TIMEOUT", "5s")

	cfg, err := orggraph.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "https://mo.example.org/graphql/v22", cfg.Endpoint)
	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfig_missingEndpoint(t *testing.T) {
	t.Setenv("ORGGRAPH_ENDPOINT", "placeholder")
	require.NoError(t, os.Unsetenv("ORGGRAPH_ENDPOINT"))

	_, err := orggraph.LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_fromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orggraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"endpoint: https://mo.example.org/graphql/v22\ntimeout: 10s\n",
	), 0o600))

	cfg, err := orggraph.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://mo.example.org/graphql/v22", cfg.Endpoint)
	assert.Empty(t, cfg.AuthToken)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestNewClientFromConfig_authHeader(t *testing.T) {
	seen := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seen = req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		mustWrite(w, `{"data": {"org": {"uuid": "10f94a2a-6273-4ff1-a09e-79a14fdef9ea"}}}`)
	}))
	defer srv.Close()

	client := orggraph.NewClientFromConfig(&orggraph.Config{
		Endpoint:  srv.URL,
		AuthToken: "secret",
		Timeout:   5 * time.Second,
	})

	org, err := client.GetOrganization(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "10f94a2a-6273-4ff1-a09e-79a14fdef9ea", org.UUID.String())
	assert.Equal(t, "Bearer secret", seen)
}
