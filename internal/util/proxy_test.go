package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/greenstamp/greenstamp/internal/model"
)

func proxyFor(t *testing.T, cfg model.ProxyConfig, target string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	u, err := NewProxyFunc(cfg)(req)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil {
		return ""
	}
	return u.String()
}

func TestNewProxyFunc_ExplicitProxies(t *testing.T) {
	cfg := model.ProxyConfig{
		HTTP:  "http://proxy.internal:3128",
		HTTPS: "http://secure-proxy.internal:3128",
	}

	if got := proxyFor(t, cfg, "http://example.com/"); got != "http://proxy.internal:3128" {
		t.Errorf("http proxy = %q", got)
	}
	if got := proxyFor(t, cfg, "https://example.com/"); got != "http://secure-proxy.internal:3128" {
		t.Errorf("https proxy = %q", got)
	}
}

func TestNewProxyFunc_NoProxyExemption(t *testing.T) {
	cfg := model.ProxyConfig{
		HTTP:    "http://proxy.internal:3128",
		NoProxy: "localhost,.corp.example.com",
	}

	if got := proxyFor(t, cfg, "http://localhost:11434/api/generate"); got != "" {
		t.Errorf("expected direct connection for exempted host, got %q", got)
	}
	if got := proxyFor(t, cfg, "http://ollama.corp.example.com/"); got != "" {
		t.Errorf("expected direct connection for exempted domain, got %q", got)
	}
	if got := proxyFor(t, cfg, "http://example.com/"); got != "http://proxy.internal:3128" {
		t.Errorf("non-exempt host proxy = %q", got)
	}
}
