package main

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"biztime/internal/config"
)

func TestNewServerUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = ":4321"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := newServer(cfg, http.NotFoundHandler(), logger)

	if srv.Addr != ":4321" {
		t.Fatalf("expected addr :4321, got %q", srv.Addr)
	}
	if srv.ReadTimeout != cfg.Server.ReadTimeout || srv.WriteTimeout != cfg.Server.WriteTimeout {
		t.Fatalf("timeouts not applied: %+v", srv)
	}
	if srv.ErrorLog == nil {
		t.Fatal("expected ErrorLog to be bridged to slog")
	}
}

func TestDBConfig(t *testing.T) {
	cfg := config.Default()
	got := dbConfig(cfg)
	if got.URL != cfg.Database.URL || got.MaxOpenConns != cfg.Database.MaxOpenConns {
		t.Fatalf("unexpected database config %+v", got)
	}
}
