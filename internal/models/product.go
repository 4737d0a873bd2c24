package models

// Product is the single persisted entity of the storefront.
//
// JSON keys mirror what the legacy frontend already consumes, so they must
// not change: id,name,desc,price,img,cat,qris.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Desc  string  `json:"desc"`
	Price float64 `json:"price"`
	Img   string  `json:"img"`
	Cat   string  `json:"cat"`
	Qris  string  `json:"qris"`
}

// DefaultCategory is applied when a product is created without a category.
const DefaultCategory = "panel"

// Document is the canonical on-disk shape of the product database: a single
// object with the product list under the "produk" key. Older files used a
// bare array or a "products" key; the store converts those on load.
type Document struct {
	Produk []Product `json:"produk"`
}
