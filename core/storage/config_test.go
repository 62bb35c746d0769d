package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigHost(t *testing.T) {
	tests := map[string]string{
		"localhost:9000":           "localhost:9000",
		"http://localhost:9000":    "localhost:9000",
		"https://s3.amazonaws.com": "s3.amazonaws.com",
	}
	for endpoint, want := range tests {
		assert.Equal(t, want, Config{Endpoint: endpoint}.host(), endpoint)
	}
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Config{}.timeout())
	assert.Equal(t, 30*time.Second, Config{TimeoutSeconds: -5}.timeout())
	assert.Equal(t, 5*time.Second, Config{TimeoutSeconds: 5}.timeout())
}
