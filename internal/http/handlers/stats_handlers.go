package handlers

import "net/http"

// StatsHandler godoc
// @Summary Catalog summary for the admin dashboard
// @Tags products
// @Produce json
// @Success 200 {object} StatsResult
// @Router /admin/produk/stats [get]
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not read products")
		return
	}

	categories := make(map[string]int)
	var lastID int64
	for _, p := range products {
		categories[p.Cat]++
		if p.ID > lastID {
			lastID = p.ID
		}
	}

	_ = writeJSON(w, http.StatusOK, StatsResult{
		OK:         true,
		Total:      len(products),
		Categories: categories,
		LastID:     lastID,
	})
}
