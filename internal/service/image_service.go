package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// Colecciones a las que se puede asociar una imagen subida
const (
	ImageForProduct = "product"
	ImageForPage    = "page"
)

// ImageService guarda imágenes en disco local y actualiza el registro dueño.
type ImageService struct {
	dir      string
	maxBytes int64
	products ProductRepository
	pages    *PageService
	now      func() time.Time
}

func NewImageService(dir string, maxBytes int64, products ProductRepository, pages *PageService) *ImageService {
	return &ImageService{
		dir:      dir,
		maxBytes: maxBytes,
		products: products,
		pages:    pages,
		now:      time.Now,
	}
}

// Save valida el contenido real del archivo (no el Content-Type ni el nombre
// del cliente), lo escribe como <unixmilli>-<uuid><ext> y devuelve el nombre.
// La extensión sale siempre del tipo detectado.
func (s *ImageService) Save(ctx context.Context, collection, item string, r io.Reader) (string, error) {
	if collection != ImageForProduct && collection != ImageForPage {
		return "", ErrUnknownCollection
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "read upload")
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrImageTooLarge
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ErrNotImage
	}

	name := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + uuid.NewString() + mime.Extension()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create image dir")
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, "write image")
	}

	switch collection {
	case ImageForProduct:
		err = s.products.SetImage(ctx, item, name)
	case ImageForPage:
		err = s.pages.pages.SetImage(ctx, item, name)
		s.pages.forgetImage(item)
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", classify("set image", err)
	}

	return name, nil
}
