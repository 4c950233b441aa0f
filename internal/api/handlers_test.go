package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolkv/schoolkv/internal/kvstore"
	"github.com/schoolkv/schoolkv/internal/pagination"
)

func testRouter(server *Server) http.Handler {
	r := chi.NewRouter()
	r.Post("/kv/{key}", server.SetValue)
	r.Get("/kv/{key}", server.GetValue)
	r.Delete("/kv/{key}", server.DeleteValue)
	r.Get("/names", server.ListNames)
	return r
}

func writeNamesCSV(t *testing.T, rows int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.csv")
	var b strings.Builder
	b.WriteString("Rank,Name,Count\n")
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&b, "%d,Name%d,%d\n", i, i, 100+i)
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestSetAndGetValue(t *testing.T) {
	router := testRouter(newTestServer())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/kv/school", strings.NewReader(`{"value":"100"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/kv/school", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "100", body["value"])
}

func TestSetValueRejectsBadRequests(t *testing.T) {
	router := testRouter(newTestServer())

	cases := []struct {
		name string
		body string
	}{
		{"missing value", `{}`},
		{"empty value", `{"value":""}`},
		{"malformed json", `{"value":`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/kv/school", strings.NewReader(c.body))
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetValueNotFound(t *testing.T) {
	router := testRouter(newTestServer())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/kv/absent", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "key not found")
}

func TestDeleteValue(t *testing.T) {
	router := testRouter(newTestServer())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/kv/school", strings.NewReader(`{"value":"100"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/kv/school", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/kv/school", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListNames(t *testing.T) {
	store := kvstore.NewMemoryStore()
	pager := pagination.NewPager(writeNamesCSV(t, 7))
	router := testRouter(NewServer(store, pager))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/names?page=2&page_size=3", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var page pagination.HyperPage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 3, *page.NextPage)
	require.NotNil(t, page.PrevPage)
	assert.Equal(t, 1, *page.PrevPage)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "Name4", page.Data[0][1])
}

func TestListNamesDefaults(t *testing.T) {
	store := kvstore.NewMemoryStore()
	pager := pagination.NewPager(writeNamesCSV(t, 25))
	router := testRouter(NewServer(store, pager))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/names", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var page pagination.HyperPage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Nil(t, page.PrevPage)
}

func TestListNamesRejectsBadParams(t *testing.T) {
	store := kvstore.NewMemoryStore()
	pager := pagination.NewPager(writeNamesCSV(t, 7))
	router := testRouter(NewServer(store, pager))

	for _, query := range []string{
		"?page=0",
		"?page=abc",
		"?page_size=0",
		"?page_size=xyz",
		"?page_size=1000",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/names"+query, nil)
		router.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "query %s", query)
	}
}
