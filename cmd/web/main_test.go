package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomz197/invaders/internal/config"
)

func TestHandler_LandingPage(t *testing.T) {
	srv := httptest.NewServer(newHandler(config.Settings{SSHDisplayHost: "play.example.com", SSHPort: "2222"}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "ssh -t -p 2222 play.example.com") {
		t.Errorf("page missing connect command:\n%s", body)
	}
	if strings.Contains(string(body), "{{.") {
		t.Error("page has unreplaced placeholders")
	}
}

func TestHandler_UnknownPath(t *testing.T) {
	srv := httptest.NewServer(newHandler(config.Settings{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
