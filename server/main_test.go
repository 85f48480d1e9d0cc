//go:build !js
// +build !js

package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandler(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "freddies.js"), []byte("// bundle"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newHandler(dir)

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{"root", "/", http.StatusOK, `id="c"`},
		{"index", "/index.html", http.StatusOK, "freddies.js"},
		{"bundle", "/freddies.js", http.StatusOK, "// bundle"},
		{"health", "/api/health", http.StatusOK, "healthy"},
		{"missing", "/nope.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			body, _ := io.ReadAll(rec.Body)
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestRun_RejectsMissingStaticDir(t *testing.T) {
	if err := run(0, filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing static dir")
	}
}
