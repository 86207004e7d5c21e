package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/rumo/internal/model"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("rumo %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"RUMO_BACKEND", "RUMO_DB", "RUMO_REDIS_ADDR", "RUMO_REDIS_PASSWORD", "RUMO_REDIS_DB"} {
		t.Setenv(name, "")
	}
	return dir
}

func TestGoalAndWeekCommands(t *testing.T) {
	dir := isolateXDG(t)
	db := filepath.Join(dir, "rumo.db")

	runCLI(t, "goal", "--db", db, "ENEM", "2027")
	if out := runCLI(t, "goal", "--db", db); strings.TrimSpace(out) != "ENEM 2027" {
		t.Fatalf("unexpected goal output %q", out)
	}

	out := runCLI(t, "week", "--db", db)
	for _, want := range []string{"rumo à ENEM 2027", "esta semana", "seg", "dom", "total 00:00:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in week output:\n%s", want, out)
		}
	}
}

func TestValidateStoreConfig(t *testing.T) {
	cases := []struct {
		cfg model.StoreConfig
		ok  bool
	}{
		{model.StoreConfig{Backend: "sqlite", Path: "x.db"}, true},
		{model.StoreConfig{Backend: "sqlite"}, false},
		{model.StoreConfig{Backend: "redis", RedisAddr: "localhost:6379"}, true},
		{model.StoreConfig{Backend: "redis"}, false},
		{model.StoreConfig{Backend: "redis", RedisAddr: "localhost:6379", RedisDB: -1}, false},
		{model.StoreConfig{Backend: "memory"}, true},
		{model.StoreConfig{Backend: "bolt"}, false},
	}
	for _, tc := range cases {
		err := validateStoreConfig(tc.cfg)
		if (err == nil) != tc.ok {
			t.Fatalf("validateStoreConfig(%+v) = %v, want ok=%v", tc.cfg, err, tc.ok)
		}
	}
}

func TestDefaultConfigTemplateMentionsStore(t *testing.T) {
	tmpl := defaultConfigTemplate()
	if !strings.Contains(tmpl, "[store]") || !strings.Contains(tmpl, `backend = "sqlite"`) {
		t.Fatalf("unexpected template:\n%s", tmpl)
	}
}
