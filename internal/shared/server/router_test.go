package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAddr(t *testing.T) {
	cases := []struct {
		port string
		want string
	}{
		{"", ":9000"},
		{"9000", ":9000"},
		{":8080", ":8080"},
	}
	for _, tc := range cases {
		if got := Addr(tc.port); got != tc.want {
			t.Fatalf("Addr(%q): got %q, want %q", tc.port, got, tc.want)
		}
	}
}

func TestStaticServesAssetsAndFallsBackToIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	r := gin.New()
	registerStatic(r, dir)

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || resp.Body.String() != "console.log(1)" {
		t.Fatalf("asset request: code %d body %q", resp.Code, resp.Body.String())
	}

	// Deep links fall through to the SPA entry point.
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || resp.Body.String() != "<html>app</html>" {
		t.Fatalf("deep link: code %d body %q", resp.Code, resp.Body.String())
	}

	// Traversal attempts stay inside the static dir.
	req = httptest.NewRequest(http.MethodGet, "/../secret", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || resp.Body.String() != "<html>app</html>" {
		t.Fatalf("traversal: code %d body %q", resp.Code, resp.Body.String())
	}
}
