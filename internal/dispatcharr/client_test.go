package dispatcharr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func loginHandler(t *testing.T, token string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("login method = %s, want POST", r.Method)
		}
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode login payload: %v", err)
		}
		if creds["username"] != "admin" || creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access": token}) //nolint:errcheck
	}
}

func TestClientLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/accounts/token/", loginHandler(t, "tok-123"))
	mux.HandleFunc("/api/channels/groups/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want Bearer tok-123", got)
		}
		fmt.Fprint(w, `[{"id": 1, "name": "US Locals"}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, Options{})
	ctx := context.Background()

	if err := c.Login(ctx, "admin", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	groups, err := c.Groups(ctx)
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "US Locals" {
		t.Errorf("Groups = %+v", groups)
	}
}

func TestClientLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := New(srv.URL, Options{}).Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestClientLoginEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access": ""}`)
	}))
	defer srv.Close()

	err := New(srv.URL, Options{}).Login(context.Background(), "admin", "secret")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized for empty token", err)
	}
}

func TestClientChannels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id": 10, "name": "HBO 2 [HD]", "channel_number": 501, "channel_group_id": 2, "logo_id": 0},
			{"id": 11, "name": "ABC (WABC)", "channel_number": "7.1", "channel_group_id": 1, "logo_id": 4}
		]`)
	}))
	defer srv.Close()

	channels, err := New(srv.URL, Options{}).Channels(context.Background())
	if err != nil {
		t.Fatalf("Channels: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("got %d channels, want 2", len(channels))
	}
	// channel_number arrives as either number or string; both must survive.
	if channels[0].ChannelNumber.String() != "501" {
		t.Errorf("numeric channel_number = %q", channels[0].ChannelNumber.String())
	}
	if channels[1].ChannelNumber.String() != "7.1" {
		t.Errorf("string channel_number = %q", channels[1].ChannelNumber.String())
	}
}

func TestClientLogosPagination(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/channels/logos/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"results": []Logo{{ID: 1, Name: "HBO"}, {ID: 2, Name: "HBO2"}},
			"next":    srv.URL + "/api/channels/logos/page2/",
		})
	})
	mux.HandleFunc("/api/channels/logos/page2/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"results": []Logo{{ID: 3, Name: "Cinemax"}},
			"next":    "",
		})
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	logos, err := New(srv.URL, Options{}).Logos(context.Background())
	if err != nil {
		t.Fatalf("Logos: %v", err)
	}
	if len(logos) != 3 {
		t.Fatalf("got %d logos, want 3 across pages", len(logos))
	}
	if logos[2].Name != "Cinemax" {
		t.Errorf("last logo = %+v", logos[2])
	}
}

func TestClientBulkEdit(t *testing.T) {
	var received []ChannelEdit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/channels/channels/edit/bulk/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode bulk payload: %v", err)
		}
	}))
	defer srv.Close()

	edits := []ChannelEdit{
		{ID: 10, Name: "HBO2 [HD]"},
		{ID: 11, Name: "ABC - NY New York (WABC)"},
	}
	if err := New(srv.URL, Options{}).BulkEdit(context.Background(), edits); err != nil {
		t.Fatalf("BulkEdit: %v", err)
	}
	if len(received) != 2 || received[1].Name != "ABC - NY New York (WABC)" {
		t.Errorf("server received %+v", received)
	}
}

func TestClientBulkEditEmptyIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty bulk edit must not reach the host")
	}))
	defer srv.Close()

	if err := New(srv.URL, Options{}).BulkEdit(context.Background(), nil); err != nil {
		t.Fatalf("BulkEdit(nil): %v", err)
	}
}

func TestClientErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrBadResponse},
		{http.StatusInternalServerError, ErrUpstreamError},
		{http.StatusBadGateway, ErrUpstreamError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := New(srv.URL, Options{}).Groups(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}

			var apiError *APIError
			if !errors.As(err, &apiError) {
				t.Fatalf("error %v is not an *APIError", err)
			}
			if apiError.Status != tt.status {
				t.Errorf("status = %d, want %d", apiError.Status, tt.status)
			}
		})
	}
}

func TestClientUnreachableHost(t *testing.T) {
	c := New("http://127.0.0.1:1", Options{})
	_, err := c.Groups(context.Background())
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("error = %v, want ErrUpstreamUnavailable", err)
	}
}
