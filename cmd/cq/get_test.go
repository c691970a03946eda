package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/confq/format"
	"github.com/signadot/confq/query"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func writeConf(t *testing.T, src string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "conf.obj")
	if err := os.WriteFile(fn, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func testGetConfig() *GetConfig {
	return &GetConfig{
		MainConfig: &MainConfig{Main: cli.NewCommand("cq")},
		Bits:       64,
	}
}

func TestGetArg(t *testing.T) {
	fn := writeConf(t, `{ ham = 0x11, arr = {10,20,30,40}, name = "alice" }`)

	tests := []struct {
		name string
		as   string
		bits int
		path string
		want string
	}{
		{name: "raw default", path: "arr[3]", want: "40\n"},
		{name: "raw hex stays hex", path: "ham", want: "0x11\n"},
		{name: "uint coercion", as: "uint", bits: 8, path: "ham", want: "17\n"},
		{name: "string unquotes", as: "string", path: "name", want: "alice\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testGetConfig()
			cfg.As = tc.as
			if tc.bits != 0 {
				cfg.Bits = tc.bits
			}
			var buf bytes.Buffer
			if err := getArg(cfg, &buf, fn, tc.path); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGetArgFormats(t *testing.T) {
	fn := writeConf(t, `{ ham = 0x11 }`)

	cfg := testGetConfig()
	cfg.As = "uint"
	f := format.JSONFormat
	cfg.OutFormat = &f
	var buf bytes.Buffer
	if err := getArg(cfg, &buf, fn, "ham"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "17\n" {
		t.Errorf("json output = %q, want %q", got, "17\n")
	}

	f = format.YAMLFormat
	buf.Reset()
	if err := getArg(cfg, &buf, fn, "ham"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "17\n" {
		t.Errorf("yaml output = %q, want %q", got, "17\n")
	}
}

func TestGetArgErrors(t *testing.T) {
	fn := writeConf(t, `{ arr = {1,2} }`)

	cfg := testGetConfig()
	var buf bytes.Buffer
	if err := getArg(cfg, &buf, fn, "arr[2]"); !errors.Is(err, query.ErrIndexValue) {
		t.Errorf("got %v, want %v", err, query.ErrIndexValue)
	}
	if err := getArg(cfg, &buf, fn, "missing"); !errors.Is(err, query.ErrNotFound) {
		t.Errorf("got %v, want %v", err, query.ErrNotFound)
	}
	cfg.As = "nope"
	if err := getArg(cfg, &buf, fn, "arr[0]"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want %v", err, cli.ErrUsage)
	}
}

func TestCheckArg(t *testing.T) {
	fn := writeConf(t, `{ ham = 0x11, name = "alice", on = true }`)

	tests := []struct {
		name string
		path string
		expr string
		want bool
	}{
		{name: "int compare", path: "ham", expr: "value == 17", want: true},
		{name: "int range", path: "ham", expr: "value > 100", want: false},
		{name: "string compare", path: "name", expr: `value == "alice"`, want: true},
		{name: "bool value", path: "on", expr: "value", want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := expr.Compile(tc.expr, expr.AsBool())
			if err != nil {
				t.Fatal(err)
			}
			got, err := checkArg(prog, fn, tc.path)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("check %q on %s = %v, want %v", tc.expr, tc.path, got, tc.want)
			}
		})
	}
}
