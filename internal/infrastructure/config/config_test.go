package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 7429 {
		t.Errorf("server.port = %d, want 7429", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q", cfg.Server.Host)
	}
	if cfg.Render.Mode != "html" {
		t.Errorf("render.mode = %q", cfg.Render.Mode)
	}
	if !cfg.Browser.Open {
		t.Error("browser.open should default to true")
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics.enabled should default to false")
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("server.shutdown_timeout = %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadRejectsBadRenderMode(t *testing.T) {
	t.Setenv("RENDER_MODE", "fancy")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for render.mode")
	}
}

func TestServerConfigAddr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 7429}

	if got := cfg.Addr(); got != "0.0.0.0:7429" {
		t.Errorf("Addr() = %q", got)
	}
	if got := cfg.RootURL(); got != "http://localhost:7429/" {
		t.Errorf("RootURL() = %q", got)
	}
}
