package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFastHTTPClient_Defaults(t *testing.T) {
	client := NewFastHTTPClient()

	assert.Equal(t, DefaultTimeout, client.ReadTimeout)
	assert.Equal(t, DefaultTimeout, client.WriteTimeout)
	assert.Equal(t, DefaultMaxConnsPerHost, client.MaxConnsPerHost)
	assert.Equal(t, DefaultUserAgent, client.Name)
	assert.Nil(t, client.TLSConfig)
}

func TestNewFastHTTPClient_Options(t *testing.T) {
	client := NewFastHTTPClient(
		WithTimeout(5*time.Second),
		WithMaxConnsPerHost(8),
		WithUserAgent("test-agent"),
		WithInsecureSkipVerify(true),
	)

	assert.Equal(t, 5*time.Second, client.ReadTimeout)
	assert.Equal(t, 5*time.Second, client.WriteTimeout)
	assert.Equal(t, 8, client.MaxConnsPerHost)
	assert.Equal(t, "test-agent", client.Name)
	if assert.NotNil(t, client.TLSConfig) {
		assert.True(t, client.TLSConfig.InsecureSkipVerify)
	}
}
