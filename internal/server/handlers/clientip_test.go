package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded-for single", map[string]string{"X-Forwarded-For": "1.2.3.4"}, "1.2.3.4"},
		{"forwarded-for chain", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1, 10.0.0.2"}, "1.2.3.4"},
		{"forwarded-for padded", map[string]string{"X-Forwarded-For": "  1.2.3.4 , 10.0.0.1"}, "1.2.3.4"},
		{"real-ip fallback", map[string]string{"X-Real-IP": "5.6.7.8"}, "5.6.7.8"},
		{"forwarded-for wins", map[string]string{"X-Forwarded-For": "1.1.1.1", "X-Real-IP": "2.2.2.2"}, "1.1.1.1"},
		{"no headers", nil, "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, clientKey(req))
		})
	}
}
