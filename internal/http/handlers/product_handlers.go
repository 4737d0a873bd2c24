package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dimasarya/panelstore/internal/models"
	"github.com/dimasarya/panelstore/internal/repo"
)

// GetDocumentHandler godoc
// @Summary Get the full product document
// @Description Returns the canonical {produk:[...]} envelope the catalog and admin pages consume.
// @Tags products
// @Produce json
// @Success 200 {object} models.Document
// @Router /produk.json [get]
func GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not read products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	_ = writeJSON(w, http.StatusOK, models.Document{Produk: products})
}

// GetProductsHandler godoc
// @Summary List products as a bare array
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/produk [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not read products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	_ = writeJSON(w, http.StatusOK, products)
}

// AddProductHandler godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body AddProductRequest true "Product to add"
// @Success 200 {object} ProductResult
// @Failure 400 {object} OKResult
// @Router /api/admin/add [post]
func AddProductHandler(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid input")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fail(w, http.StatusBadRequest, "name is required")
		return
	}

	cat := strings.TrimSpace(req.Cat)
	if cat == "" {
		cat = models.DefaultCategory
	}
	price := float64(req.Price)
	if price < 0 {
		price = 0
	}

	product := models.Product{
		Name:  name,
		Desc:  req.Desc,
		Price: price,
		Img:   req.Img,
		Cat:   cat,
		Qris:  req.Qris,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		log.Errorw("could not create product", "error", err)
		fail(w, http.StatusInternalServerError, "could not save product")
		return
	}

	_ = writeJSON(w, http.StatusOK, ProductResult{OK: true, Product: created})
}

// EditProductHandler godoc
// @Summary Update a product
// @Description Partial update; accepts JSON or multipart form data. An uploaded file takes precedence over an img field.
// @Tags products
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResult
// @Failure 400 {object} OKResult
// @Failure 404 {object} OKResult
// @Router /api/admin/edit/{id} [post]
func EditProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	req, fileURL, err := parseEditRequest(r)
	if err != nil {
		if errors.Is(err, errStoreUpload) {
			log.Errorw("could not store attached upload", "id", id, "error", err)
			fail(w, http.StatusInternalServerError, "could not store file")
			return
		}
		fail(w, http.StatusBadRequest, "invalid input")
		return
	}

	// lookup and merge run inside one store update, so a concurrent edit
	// cannot slip in between the read and the write
	updated, err := productRepo.Modify(id, func(product models.Product) models.Product {
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Desc != nil {
			product.Desc = *req.Desc
		}
		if req.Price != nil {
			price := float64(*req.Price)
			if price < 0 {
				price = 0
			}
			product.Price = price
		}
		if req.Cat != nil {
			product.Cat = *req.Cat
		}
		if req.Qris != nil {
			product.Qris = *req.Qris
		}
		// precedence: fresh upload, then a non-empty img field, then keep
		if fileURL != "" {
			product.Img = fileURL
		} else if req.Img != nil && *req.Img != "" {
			product.Img = *req.Img
		}
		return product
	})
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			fail(w, http.StatusNotFound, "product not found")
			return
		}
		log.Errorw("could not update product", "id", id, "error", err)
		fail(w, http.StatusInternalServerError, "could not save product")
		return
	}

	_ = writeJSON(w, http.StatusOK, ProductResult{OK: true, Product: updated})
}

// errStoreUpload marks a failure to persist an attached file, as opposed to
// a malformed request.
var errStoreUpload = errors.New("store upload")

// parseEditRequest reads the partial update from either a JSON body or a
// form body (multipart or urlencoded). For multipart requests it also stores
// an attached file, returning its public URL.
func parseEditRequest(r *http.Request) (EditProductRequest, string, error) {
	ct := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return EditProductRequest{}, "", err
		}
		req := editRequestFromForm(url.Values(r.MultipartForm.Value))

		file, header, err := r.FormFile("file")
		if err != nil {
			return req, "", nil
		}
		defer file.Close()
		fileURL, err := saveUpload(file, header)
		if err != nil {
			return EditProductRequest{}, "", fmt.Errorf("%w: %v", errStoreUpload, err)
		}
		return req, fileURL, nil

	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return EditProductRequest{}, "", err
		}
		return editRequestFromForm(r.PostForm), "", nil

	default:
		var req EditProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return EditProductRequest{}, "", err
		}
		// an empty body is a valid edit that changes nothing
		return req, "", nil
	}
}

func editRequestFromForm(values url.Values) EditProductRequest {
	var req EditProductRequest
	if v, ok := formValue(values, "name"); ok {
		req.Name = &v
	}
	if v, ok := formValue(values, "desc"); ok {
		req.Desc = &v
	}
	if v, ok := formValue(values, "price"); ok {
		price := looseFloat(0)
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			price = looseFloat(parsed)
		}
		req.Price = &price
	}
	if v, ok := formValue(values, "img"); ok {
		req.Img = &v
	}
	if v, ok := formValue(values, "cat"); ok {
		req.Cat = &v
	}
	if v, ok := formValue(values, "qris"); ok {
		req.Qris = &v
	}
	return req
}

func formValue(values url.Values, key string) (string, bool) {
	if vs, ok := values[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Idempotent: deleting an id that is already gone still succeeds.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} OKResult
// @Failure 400 {object} OKResult
// @Router /api/admin/delete/{id} [post]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := productRepo.Delete(id); err != nil && !errors.Is(err, repo.ErrProductNotFound) {
		log.Errorw("could not delete product", "id", id, "error", err)
		fail(w, http.StatusInternalServerError, "could not save products")
		return
	}
	_ = writeJSON(w, http.StatusOK, OKResult{OK: true})
}
