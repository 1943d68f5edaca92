// Package storage implementa el almacenamiento local de adjuntos.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cuerpodebomberos/intranet-api/internal/application/tickets"
)

var _ tickets.FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos bajo un directorio base del disco local.
// Los nombres se prefijan con un UUID para evitar colisiones; la ruta
// devuelta es relativa al directorio base.
type LocalStore struct {
	baseDir string
	maxSize int64
}

// NewLocalStore construye el almacenamiento y crea el directorio base.
func NewLocalStore(baseDir string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir, maxSize: maxSize}, nil
}

// Save escribe el contenido y devuelve la ruta relativa del archivo.
// Rechaza archivos que superen el tamaño máximo configurado.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	name := uuid.New().String() + "_" + filepath.Base(filename)
	full := filepath.Join(s.baseDir, name)

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		os.Remove(full)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	if n > s.maxSize {
		os.Remove(full)
		return "", fmt.Errorf("storage: el archivo supera el tamaño máximo de %d bytes", s.maxSize)
	}
	return name, nil
}

// Open abre un archivo previamente guardado (para servir descargas).
func (s *LocalStore) Open(relPath string) (io.ReadCloser, error) {
	full := filepath.Join(s.baseDir, filepath.Base(relPath))
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir archivo: %w", err)
	}
	return f, nil
}
