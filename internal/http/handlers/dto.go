package handlers

import (
	"bytes"
	"strconv"

	"github.com/dimasarya/panelstore/internal/models"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult mirrors the legacy response shape: login and logout answer
// with success, the session probe with auth.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type CheckResult struct {
	Auth bool `json:"auth"`
}

type ProductResult struct {
	OK      bool           `json:"ok"`
	Product models.Product `json:"product"`
}

type OKResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type UploadResult struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}

type StatsResult struct {
	OK         bool           `json:"ok"`
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
	LastID     int64          `json:"last_id"`
}

// looseFloat tolerates the loose typing of the admin frontend: prices arrive
// as JSON numbers or as strings, and anything unparsable coerces to zero
// rather than failing the request.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = looseFloat(v)
	return nil
}

type AddProductRequest struct {
	Name  string     `json:"name"`
	Desc  string     `json:"desc"`
	Price looseFloat `json:"price"`
	Img   string     `json:"img"`
	Cat   string     `json:"cat"`
	Qris  string     `json:"qris"`
}

// EditProductRequest uses pointers so an absent field can be told apart from
// an explicit empty value; absent fields keep their stored value.
type EditProductRequest struct {
	Name  *string     `json:"name"`
	Desc  *string     `json:"desc"`
	Price *looseFloat `json:"price"`
	Img   *string     `json:"img"`
	Cat   *string     `json:"cat"`
	Qris  *string     `json:"qris"`
}
