package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dimasarya/panelstore/internal/auth"
	api "github.com/dimasarya/panelstore/internal/http"
	handler "github.com/dimasarya/panelstore/internal/http/handlers"
	rl "github.com/dimasarya/panelstore/internal/http/rate_limiter"
	"github.com/dimasarya/panelstore/internal/models"
	"github.com/dimasarya/panelstore/internal/repo"
	"github.com/dimasarya/panelstore/internal/store"
)

const (
	testUser     = "admin"
	testPassword = "rahasia"
)

type env struct {
	router    http.Handler
	store     *store.FileStore
	uploadDir string
}

// setupServer wires a fresh file store, upload dir and credentials into the
// handler package and returns the full router.
func setupServer(t *testing.T) *env {
	t.Helper()
	rl.CleanupAllVisitors()

	dir := t.TempDir()
	st := store.NewFileStore(filepath.Join(dir, "produk.json"), nil)
	handler.SetProductRepo(repo.NewFileProductRepository(st))

	uploadDir := filepath.Join(dir, "uploads")
	handler.SetUploadDir(uploadDir)

	if err := auth.Configure("test-secret", testUser, testPassword); err != nil {
		t.Fatalf("configuring auth: %v", err)
	}
	api.SetPublicDir(filepath.Join(dir, "public"))

	return &env{router: api.NewRouter(), store: st, uploadDir: uploadDir}
}

// doJSON performs a request with an optional JSON body and session cookie.
func (e *env) doJSON(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login authenticates with the test credentials and returns the session
// cookie.
func (e *env) login(t *testing.T) *http.Cookie {
	t.Helper()

	w := e.doJSON(t, http.MethodPost, "/admin/login", handler.CredentialsRequest{
		Username: testUser,
		Password: testPassword,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	t.Fatal("login response did not set the session cookie")
	return nil
}

// addProduct creates a product through the API and returns it.
func (e *env) addProduct(t *testing.T, cookie *http.Cookie, body any) models.Product {
	t.Helper()

	w := e.doJSON(t, http.MethodPost, "/api/admin/add", body, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("add failed with status %d: %s", w.Code, w.Body.String())
	}
	var resp handler.ProductResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding add response: %v", err)
	}
	if !resp.OK {
		t.Fatalf("add response not ok: %+v", resp)
	}
	return resp.Product
}

// listProducts fetches the public bare-array listing.
func (e *env) listProducts(t *testing.T) []models.Product {
	t.Helper()

	w := e.doJSON(t, http.MethodGet, "/api/produk", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed with status %d", w.Code)
	}
	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("decoding product list: %v", err)
	}
	return products
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func newRequest(method, path string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, path, body)
}

func serve(e *env, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// multipartBody builds a multipart form with the given fields and, when
// fileField is non-empty, one attached file.
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("writing form field %s: %v", k, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("writing form file: %v", err)
		}
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}
