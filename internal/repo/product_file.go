package repo

import (
	"sync"
	"time"

	"github.com/dimasarya/panelstore/internal/models"
	"github.com/dimasarya/panelstore/internal/store"
)

// FileProductRepository implements ProductRepository on top of the JSON file
// store. Every operation is a full read-modify-write of the document.
type FileProductRepository struct {
	store *store.FileStore

	mu     sync.Mutex
	lastID int64
}

// NewFileProductRepository creates a repository backed by the given store.
func NewFileProductRepository(s *store.FileStore) *FileProductRepository {
	return &FileProductRepository{store: s}
}

// nextID returns a fresh unique id. Ids are derived from the current unix
// millisecond but always strictly greater than any id seen so far, so two
// creates in the same millisecond (or a clock step backwards) cannot collide.
func (r *FileProductRepository) nextID(existing []models.Product) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range existing {
		if p.ID > r.lastID {
			r.lastID = p.ID
		}
	}
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// Create appends the product with a fresh id and persists the document.
func (r *FileProductRepository) Create(product models.Product) (models.Product, error) {
	err := r.store.Update(func(products []models.Product) ([]models.Product, error) {
		product.ID = r.nextID(products)
		return append(products, product), nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// GetAll retrieves all products in insertion order.
func (r *FileProductRepository) GetAll() ([]models.Product, error) {
	return r.store.Load().Produk, nil
}

// GetByID retrieves a product by its id.
func (r *FileProductRepository) GetByID(id int64) (models.Product, error) {
	for _, p := range r.store.Load().Produk {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update replaces the stored product with the same id.
func (r *FileProductRepository) Update(product models.Product) (models.Product, error) {
	err := r.store.Update(func(products []models.Product) ([]models.Product, error) {
		for i, p := range products {
			if p.ID == product.ID {
				products[i] = product
				return products, nil
			}
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Modify applies fn to the stored product with the given id and persists
// the result. Lookup, merge and write happen inside one store update, so a
// partial edit always merges against the latest stored state instead of a
// stale snapshot.
func (r *FileProductRepository) Modify(id int64, fn func(models.Product) models.Product) (models.Product, error) {
	var updated models.Product
	err := r.store.Update(func(products []models.Product) ([]models.Product, error) {
		for i, p := range products {
			if p.ID == id {
				updated = fn(p)
				updated.ID = id
				products[i] = updated
				return products, nil
			}
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// Delete removes the product with the given id. Callers that want
// idempotent deletes treat ErrProductNotFound as success.
func (r *FileProductRepository) Delete(id int64) error {
	return r.store.Update(func(products []models.Product) ([]models.Product, error) {
		for i, p := range products {
			if p.ID == id {
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, ErrProductNotFound
	})
}
