package stability

import (
	"net/http"
	"testing"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"valid", "sk-test-key", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient error: %v", err)
			}
			if client.APIKey() != tt.key {
				t.Errorf("APIKey() = %q, want %q", client.APIKey(), tt.key)
			}
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient("sk-test-key")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if client.Host() != DefaultHost {
		t.Errorf("Host() = %q, want %q", client.Host(), DefaultHost)
	}
	if client.Engine() != DefaultEngine {
		t.Errorf("Engine() = %q, want %q", client.Engine(), DefaultEngine)
	}
	if client.Generation == nil || client.Engines == nil || client.User == nil {
		t.Error("services not initialized")
	}
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{}
	client, err := NewClient("sk-test-key",
		WithHost("http://127.0.0.1:9999"),
		WithEngine("stable-diffusion-v1-6"),
		WithHTTPClient(hc),
		WithUserAgent("custom-agent/2.0"),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if client.Host() != "http://127.0.0.1:9999" {
		t.Errorf("Host() = %q", client.Host())
	}
	if client.Engine() != "stable-diffusion-v1-6" {
		t.Errorf("Engine() = %q", client.Engine())
	}
	if client.config.httpClient != hc {
		t.Error("custom http client not applied")
	}
	if client.config.userAgent != "custom-agent/2.0" {
		t.Errorf("userAgent = %q", client.config.userAgent)
	}
}

func TestBaseURLForHost(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"grpc.stability.ai:443", "https://grpc.stability.ai"},
		{"gateway.example.com", "https://gateway.example.com"},
		{"gateway.example.com:8443", "https://gateway.example.com:8443"},
		{"http://127.0.0.1:8080", "http://127.0.0.1:8080"},
		{"http://127.0.0.1:8080/", "http://127.0.0.1:8080"},
		{"https://gateway.example.com", "https://gateway.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			got := baseURLForHost(tt.host)
			if got != tt.want {
				t.Errorf("baseURLForHost(%q) = %q, want %q", tt.host, got, tt.want)
			}
		})
	}
}
