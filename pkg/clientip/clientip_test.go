package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3.4:5000", "1.2.3.4"},
		{"1.2.3.4", "1.2.3.4"},
		{" 10.0.0.1 ", "10.0.0.1"},
		{"[::1]:8080", "::1"},
		{"::1", "::1"},
		{"[2001:db8::1]", "2001:db8::1"},
		{"", ""},
		{"not-an-ip:80", ""},
		{"@", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		trust   bool
		remote  string
		headers map[string]string
		want    string
	}{
		{"remote addr", false, "1.2.3.4:5000", nil, "1.2.3.4"},
		{"headers ignored when untrusted", false, "1.2.3.4:5000", map[string]string{"X-Forwarded-For": "9.9.9.9"}, "1.2.3.4"},
		{"first forwarded hop", true, "10.0.0.1:1", map[string]string{"X-Forwarded-For": "9.9.9.9, 10.0.0.2"}, "9.9.9.9"},
		{"real ip", true, "10.0.0.1:1", map[string]string{"X-Real-IP": "8.8.8.8"}, "8.8.8.8"},
		{"garbage header falls back", true, "10.0.0.1:1", map[string]string{"X-Forwarded-For": "unknown"}, "10.0.0.1"},
		{"unresolvable", false, "pipe", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, Resolver{TrustProxyHeaders: tt.trust}.Resolve(r))
		})
	}
}
