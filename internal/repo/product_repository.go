package repo

import (
	"errors"

	"github.com/dimasarya/panelstore/internal/models"
)

// ErrProductNotFound is returned when a product id has no matching product.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations. The
// file-backed implementation is the only one in use; the interface exists so
// a database-backed implementation could slot in without touching handlers.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int64) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Modify(id int64, fn func(models.Product) models.Product) (models.Product, error)
	Delete(id int64) error
}
