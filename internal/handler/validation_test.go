package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "HTTPS URL", url: "https://example.com/a/very/long/url", wantErr: false},
		{name: "HTTP URL", url: "http://example.com", wantErr: false},
		{name: "FTP URL", url: "ftp://files.example.com/archive.tar.gz", wantErr: false},
		{name: "Mailto", url: "mailto:user@example.com", wantErr: false},
		{name: "URL with query", url: "https://example.com/search?q=test&page=2", wantErr: false},
		{name: "Empty", url: "", wantErr: true},
		{name: "Plain text", url: "not a url", wantErr: true},
		{name: "Unsupported scheme", url: "javascript:alert(1)", wantErr: true},
		{name: "Missing scheme", url: "example.com/page", wantErr: true},
		{name: "Embedded whitespace", url: "https://example.com/a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyPattern(t *testing.T) {
	re := keyPattern(7)

	assert.True(t, re.MatchString("abc1234"))
	assert.True(t, re.MatchString("AbC0xYz"))
	assert.False(t, re.MatchString("short"))
	assert.False(t, re.MatchString("toolong12"))
	assert.False(t, re.MatchString("abc123!"))
	assert.False(t, re.MatchString(""))
}
