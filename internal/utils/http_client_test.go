package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("localhost:8080", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_AppliesBaseURLAndTimeout(t *testing.T) {
	client := NewHTTPClient("localhost:8080/", 3*time.Second)

	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_ZeroTimeoutKeepsDefault(t *testing.T) {
	client := NewHTTPClient("localhost:8080", 0)

	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Two clients must not share the same underlying resty.Client
	client1 := NewHTTPClient("localhost:8080", time.Second)
	client2 := NewHTTPClient("localhost:8080", time.Second)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"localhost:8080", "http://localhost:8080"},
		{"http://10.0.0.5:8080/", "http://10.0.0.5:8080"},
		{"https://stock.example.com", "https://stock.example.com"},
		{"  127.0.0.1:9000  ", "http://127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBaseURL(tt.in))
		})
	}
}
