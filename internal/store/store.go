package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dimasarya/panelstore/internal/logger"
	"github.com/dimasarya/panelstore/internal/models"
)

// FileStore persists the product document to a single JSON file.
//
// The file is the database: every operation is a full read or a full
// overwrite, and every load normalizes whatever shape is on disk back to the
// canonical {"produk":[...]} object. Read-modify-write cycles run under one
// mutex, so concurrent requests within this process cannot lose updates;
// writers in other processes still race (last write wins).
type FileStore struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	if log == nil {
		log = logger.Nop()
	}
	return &FileStore{path: path, log: log}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the backing file and returns the canonical document. It never
// fails: a missing, empty or unparsable file recovers to the empty document,
// and every non-canonical shape is rewritten in place (self-healing).
func (s *FileStore) Load() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save persists the document in the canonical shape, overwriting the file.
func (s *FileStore) Save(doc models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc.Produk)
}

// SaveProducts persists a bare product list, wrapping it in the canonical
// document shape.
func (s *FileStore) SaveProducts(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(products)
}

// Update runs fn on the current product list and persists the result, all
// under the store mutex so the read-modify-write is a single unit. When fn
// returns an error nothing is written and the error is passed through.
func (s *FileStore) Update(fn func([]models.Product) ([]models.Product, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	products, err := fn(doc.Produk)
	if err != nil {
		return err
	}
	return s.write(products)
}

func (s *FileStore) load() models.Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnw("product file unreadable, reinitializing", "path", s.path, "error", err)
		}
		return s.heal(nil)
	}

	doc, canonical := normalize(raw)
	if !canonical {
		return s.heal(doc.Produk)
	}
	return doc
}

// heal rewrites the file in the canonical shape and returns the document.
// Write failures are logged, not propagated; the caller still gets a usable
// in-memory document.
func (s *FileStore) heal(products []models.Product) models.Document {
	if products == nil {
		products = []models.Product{}
	}
	if err := s.write(products); err != nil {
		s.log.Errorw("could not rewrite product file", "path", s.path, "error", err)
	}
	return models.Document{Produk: products}
}

func (s *FileStore) write(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	data, err := json.MarshalIndent(models.Document{Produk: products}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal product document: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write product file: %w", err)
	}
	return nil
}

// normalize maps the historical file shapes onto the canonical document:
//
//	{"produk":[...]}    canonical, kept as is
//	{"products":[...]}  legacy key, converted
//	[...]               bare array, wrapped
//	anything else       empty document
//
// The second return value reports whether the input already was canonical;
// callers rewrite the file when it was not.
func normalize(raw []byte) (models.Document, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return models.Document{Produk: []models.Product{}}, false
	}

	switch raw[0] {
	case '{':
		var envelope struct {
			Produk   []models.Product `json:"produk"`
			Products []models.Product `json:"products"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return models.Document{Produk: []models.Product{}}, false
		}
		if envelope.Produk != nil {
			return models.Document{Produk: envelope.Produk}, true
		}
		if envelope.Products != nil {
			return models.Document{Produk: envelope.Products}, false
		}
		// object without a recognizable product list
		return models.Document{Produk: []models.Product{}}, false
	case '[':
		var products []models.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			return models.Document{Produk: []models.Product{}}, false
		}
		return models.Document{Produk: products}, false
	default:
		return models.Document{Produk: []models.Product{}}, false
	}
}
