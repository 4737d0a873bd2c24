package handlers

import (
	"github.com/dimasarya/panelstore/internal/logger"
	"github.com/dimasarya/panelstore/internal/repo"
)

var (
	productRepo repo.ProductRepository
	uploadDir   string
	log         = logger.Nop()
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

// SetUploadDir sets the directory uploaded files are written to. It must be
// served under /uploads by the static file server.
func SetUploadDir(dir string) {
	uploadDir = dir
}

func SetLogger(l *logger.Logger) {
	if l != nil {
		log = l
	}
}
