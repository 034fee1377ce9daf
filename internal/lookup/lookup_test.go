package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIpify_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ip":"203.0.113.7","country":"MX"}`))
	}))
	defer srv.Close()

	addr, err := NewIpify(srv.URL+"?format=json", time.Second).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", addr)
}

func TestIpify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		is      error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusBadGateway)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"ip":`))
			},
		},
		{
			name: "missing address",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"country":"MX"}`))
			},
			is: ErrNoAddress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			addr, err := NewIpify(srv.URL, time.Second).Resolve(context.Background())
			require.Error(t, err)
			assert.Empty(t, addr)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestIpify_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewIpify(srv.URL, 20*time.Millisecond).Resolve(context.Background())
	assert.Error(t, err)
}

func TestIpify_Defaults(t *testing.T) {
	i := NewIpify("", 0)
	assert.Equal(t, DefaultURL, i.URL)
	assert.Equal(t, DefaultTimeout, i.Client.Timeout)
}

func TestStatic_Resolve(t *testing.T) {
	addr, err := Static("192.0.2.10").Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", addr)

	_, err = Static("").Resolve(context.Background())
	assert.ErrorIs(t, err, ErrNoAddress)
}
