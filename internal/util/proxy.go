package util

import (
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpproxy"

	"github.com/greenstamp/greenstamp/internal/model"
)

// NewProxyFunc builds an http.Transport proxy callback from the proxy
// configuration. With nothing configured it falls back to the standard
// HTTP_PROXY/HTTPS_PROXY/NO_PROXY environment variables; explicit
// settings replace the environment entirely, including NO_PROXY
// exemptions.
func NewProxyFunc(cfg model.ProxyConfig) func(*http.Request) (*url.URL, error) {
	if cfg.HTTP == "" && cfg.HTTPS == "" {
		return http.ProxyFromEnvironment
	}

	proxyCfg := &httpproxy.Config{
		HTTPProxy:  cfg.HTTP,
		HTTPSProxy: cfg.HTTPS,
		NoProxy:    cfg.NoProxy,
	}
	forURL := proxyCfg.ProxyFunc()

	return func(req *http.Request) (*url.URL, error) {
		return forURL(req.URL)
	}
}
