package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	handler "github.com/dimasarya/panelstore/internal/http/handlers"
	"github.com/dimasarya/panelstore/internal/models"
)

func TestAddThenListMergesDefaults(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)

	created := e.addProduct(t, cookie, map[string]any{"name": "Mouse", "price": 50000})
	if created.ID == 0 {
		t.Fatal("expected a numeric id to be assigned")
	}

	products := e.listProducts(t)
	if len(products) != 1 {
		t.Fatalf("expected exactly one product, got %d", len(products))
	}
	got := products[0]
	want := models.Product{ID: created.ID, Name: "Mouse", Desc: "", Price: 50000, Img: "", Cat: "panel", Qris: ""}
	if got != want {
		t.Errorf("defaults not merged: got %+v, want %+v", got, want)
	}
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)

	first := e.addProduct(t, cookie, map[string]any{"name": "Panel A"})
	second := e.addProduct(t, cookie, map[string]any{"name": "Panel B"})
	if second.ID <= first.ID {
		t.Errorf("expected id %d > %d", second.ID, first.ID)
	}
}

func TestAddRequiresName(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		w := e.doJSON(t, http.MethodPost, "/api/admin/add", map[string]any{"name": name, "price": 100}, cookie)
		if w.Code != http.StatusBadRequest {
			t.Errorf("name %q: expected 400, got %d", name, w.Code)
		}
		var resp handler.OKResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.OK || resp.Message == "" {
			t.Errorf("expected ok:false with a message, got %+v", resp)
		}
	}

	if got := len(e.listProducts(t)); got != 0 {
		t.Errorf("rejected adds must not change the stored sequence, got %d products", got)
	}
}

func TestAddCoercesPrice(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)

	tests := []struct {
		name  string
		price any
		want  float64
	}{
		{"number", 15000, 15000},
		{"numeric string", "25000", 25000},
		{"garbage string", "abc", 0},
		{"negative", -500, 0},
		{"absent", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{"name": "Produk " + tt.name}
			if tt.price != nil {
				body["price"] = tt.price
			}
			created := e.addProduct(t, cookie, body)
			if created.Price != tt.want {
				t.Errorf("price %v coerced to %v, want %v", tt.price, created.Price, tt.want)
			}
		})
	}
}

func TestAddLegacyAliasRoute(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)

	w := e.doJSON(t, http.MethodPost, "/api/produk/add", map[string]any{"name": "Alias"}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from alias route, got %d", w.Code)
	}
	if len(e.listProducts(t)) != 1 {
		t.Error("alias route did not persist the product")
	}
}

func TestListShapes(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)
	e.addProduct(t, cookie, map[string]any{"name": "Panel"})

	// document envelope for the catalog page and the admin UI
	for _, path := range []string{"/produk.json", "/admin/produk"} {
		w := e.doJSON(t, http.MethodGet, path, nil, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var doc models.Document
		if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
			t.Fatalf("%s: decoding document: %v", path, err)
		}
		if len(doc.Produk) != 1 {
			t.Errorf("%s: expected 1 product in envelope, got %d", path, len(doc.Produk))
		}
	}

	// bare array for API clients
	w := e.doJSON(t, http.MethodGet, "/api/produk", nil, nil)
	if body := strings.TrimSpace(w.Body.String()); !strings.HasPrefix(body, "[") {
		t.Errorf("/api/produk should return a bare array, got %s", body)
	}
}

func TestEditPartialUpdate(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)
	created := e.addProduct(t, cookie, map[string]any{
		"name": "VPS", "desc": "2 vCPU", "price": 90000, "img": "/uploads/a.png", "cat": "server", "qris": "/uploads/q.png",
	})

	w := e.doJSON(t, http.MethodPost, "/api/admin/edit/"+itoa(created.ID), map[string]any{"price": 95000}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("edit failed with status %d: %s", w.Code, w.Body.String())
	}

	got := e.listProducts(t)[0]
	want := created
	want.Price = 95000
	if got != want {
		t.Errorf("partial edit touched other fields: got %+v, want %+v", got, want)
	}
}

func TestEditImageUploadBeatsImgField(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)
	created := e.addProduct(t, cookie, map[string]any{"name": "Panel", "img": "/uploads/old.png"})

	body, contentType := multipartBody(t,
		map[string]string{"img": "/uploads/should-lose.png", "price": "12000"},
		"file", "baru.png", []byte("png-bytes"))

	req := newRequest(http.MethodPost, "/api/admin/edit/"+itoa(created.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(cookie)
	w := serve(e, req)
	if w.Code != http.StatusOK {
		t.Fatalf("edit failed with status %d: %s", w.Code, w.Body.String())
	}

	got := e.listProducts(t)[0]
	if !strings.HasPrefix(got.Img, "/uploads/") || got.Img == "/uploads/should-lose.png" || got.Img == "/uploads/old.png" {
		t.Errorf("uploaded file should win over the img field, got img %q", got.Img)
	}
	if !strings.HasSuffix(got.Img, ".png") {
		t.Errorf("upload should keep the original extension, got %q", got.Img)
	}
	if got.Price != 12000 {
		t.Errorf("form fields should still apply, got price %v", got.Price)
	}
}

func TestEditImgFieldAppliesWithoutUpload(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)
	created := e.addProduct(t, cookie, map[string]any{"name": "Panel", "img": "/uploads/old.png"})

	w := e.doJSON(t, http.MethodPost, "/api/admin/edit/"+itoa(created.ID), map[string]any{"img": "/uploads/new.png"}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("edit failed with status %d", w.Code)
	}
	if got := e.listProducts(t)[0].Img; got != "/uploads/new.png" {
		t.Errorf("expected img to be overwritten, got %q", got)
	}
}

func TestEditUnknownIDReturnsNotFound(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)

	w := e.doJSON(t, http.MethodPost, "/api/admin/edit/12345", map[string]any{"price": 1}, cookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}

	w = e.doJSON(t, http.MethodPost, "/api/admin/edit/abc", map[string]any{"price": 1}, cookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", w.Code)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)
	keep := e.addProduct(t, cookie, map[string]any{"name": "Keep"})
	gone := e.addProduct(t, cookie, map[string]any{"name": "Gone"})

	for i := 0; i < 2; i++ {
		w := e.doJSON(t, http.MethodPost, "/api/admin/delete/"+itoa(gone.ID), nil, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("delete round %d: expected 200, got %d", i+1, w.Code)
		}
		var resp handler.OKResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding delete response: %v", err)
		}
		if !resp.OK {
			t.Errorf("delete round %d: expected ok:true", i+1)
		}

		products := e.listProducts(t)
		if len(products) != 1 || products[0].ID != keep.ID {
			t.Fatalf("delete round %d: unexpected remaining products %+v", i+1, products)
		}
	}
}

func TestStatsSummarizesCatalog(t *testing.T) {
	e := setupServer(t)
	cookie := e.login(t)
	e.addProduct(t, cookie, map[string]any{"name": "A"})
	e.addProduct(t, cookie, map[string]any{"name": "B", "cat": "server"})
	last := e.addProduct(t, cookie, map[string]any{"name": "C"})

	w := e.doJSON(t, http.MethodGet, "/admin/produk/stats", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("stats failed with status %d", w.Code)
	}
	var resp handler.StatsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if resp.Total != 3 || resp.Categories["panel"] != 2 || resp.Categories["server"] != 1 {
		t.Errorf("unexpected stats: %+v", resp)
	}
	if resp.LastID != last.ID {
		t.Errorf("expected last_id %d, got %d", last.ID, resp.LastID)
	}
}
