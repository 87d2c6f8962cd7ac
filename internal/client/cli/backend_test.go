package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeBackend is a minimal in-memory implementation of the REST API.
type fakeBackend struct {
	mu      sync.Mutex
	role    string
	seq     int
	data    map[string][]map[string]any
	uploads map[string]string
	srv     *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		role:    "ADMIN",
		data:    make(map[string][]map[string]any),
		uploads: make(map[string]string),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) reply(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": http.StatusText(status), "code": status, "data": data})
}

func (b *fakeBackend) seed(resource string, items ...map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[resource] = append(b.data[resource], items...)
}

func (b *fakeBackend) items(resource string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.data[resource]...)
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case r.URL.Path == "/health":
		b.reply(w, http.StatusOK, nil)
		return
	case r.URL.Path == "/auth/login":
		b.reply(w, http.StatusOK, map[string]any{
			"token": "jwt",
			"user":  map[string]any{"id": "1", "username": "admin", "email": "admin@example.com", "role": b.role},
		})
		return
	case r.URL.Path == "/uploads/presign":
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.reply(w, http.StatusOK, map[string]any{
			"uploadUrl": b.srv.URL + "/put/" + req["fileName"],
			"publicUrl": "https://cdn.example/" + req["fileName"],
		})
		return
	case r.Method == http.MethodPut && parts[0] == "put":
		b.uploads[parts[1]] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodGet && r.Header.Get("Authorization") != "Bearer jwt" && r.URL.Path != "/contact/send" {
		b.reply(w, http.StatusUnauthorized, nil)
		return
	}

	res := parts[0]
	if r.Method == http.MethodGet {
		if len(parts) == 2 {
			for _, it := range b.data[res] {
				if it["id"] == parts[1] {
					b.reply(w, http.StatusOK, it)
					return
				}
			}
			b.reply(w, http.StatusNotFound, nil)
			return
		}
		items := b.data[res]
		if items == nil {
			items = []map[string]any{}
		}
		b.reply(w, http.StatusOK, items)
		return
	}

	op := ""
	if len(parts) > 1 {
		op = parts[1]
	}
	switch op {
	case "create", "send":
		var v map[string]any
		_ = json.NewDecoder(r.Body).Decode(&v)
		b.seq++
		v["id"] = strconv.Itoa(100 + b.seq)
		if op == "send" {
			res = "contact"
			v["read"] = false
		}
		b.data[res] = append(b.data[res], v)
		b.reply(w, http.StatusCreated, v)
	case "update":
		var v map[string]any
		_ = json.NewDecoder(r.Body).Decode(&v)
		v["id"] = parts[2]
		for i, it := range b.data[res] {
			if it["id"] == parts[2] {
				b.data[res][i] = v
			}
		}
		b.reply(w, http.StatusOK, v)
	case "delete":
		kept := b.data[res][:0]
		for _, it := range b.data[res] {
			if it["id"] != parts[2] {
				kept = append(kept, it)
			}
		}
		b.data[res] = kept
		b.reply(w, http.StatusOK, nil)
	case "read":
		for _, it := range b.data[res] {
			if it["id"] == parts[2] {
				it["read"] = true
			}
		}
		b.reply(w, http.StatusOK, nil)
	default:
		b.reply(w, http.StatusNotFound, nil)
	}
}
