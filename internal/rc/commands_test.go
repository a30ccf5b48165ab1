package rc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTypedCommandsHitTheirEndpoints(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(ServerInfo{URI: srv.URL + "/"})
	ctx := context.Background()

	if _, err := client.Noop(ctx); err != nil {
		t.Fatalf("Noop() error = %v", err)
	}
	if gotPath != "/rc/noop" {
		t.Errorf("Noop() path = %q", gotPath)
	}

	if _, err := client.CoreStats(ctx); err != nil {
		t.Fatalf("CoreStats() error = %v", err)
	}
	if gotPath != "/core/stats" {
		t.Errorf("CoreStats() path = %q", gotPath)
	}

	if _, err := client.ListRemote(ctx, "s3:", "bucket/dir"); err != nil {
		t.Fatalf("ListRemote() error = %v", err)
	}
	if gotPath != "/operations/list" {
		t.Errorf("ListRemote() path = %q", gotPath)
	}
	if gotBody["fs"] != "s3:" || gotBody["remote"] != "bucket/dir" {
		t.Errorf("ListRemote() body = %v", gotBody)
	}
}
