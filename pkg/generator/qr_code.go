package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	qr "github.com/Badsnus/coolqr/pkg/qrcode"
	"github.com/google/uuid"
)

// Renderer turns content into encoded image bytes.
type Renderer interface {
	GetQR(ctx context.Context, content string) ([]byte, error)
}

type configRenderer struct {
	cfg qr.Config
}

// FromConfig renders every content with cfg, without caching.
func FromConfig(cfg qr.Config) Renderer {
	cfg.OutputPath = ""
	return configRenderer{cfg: cfg}
}

func (r configRenderer) GetQR(_ context.Context, content string) ([]byte, error) {
	cfg := r.cfg
	cfg.Data = content
	return cfg.Generate()
}

type QRCode struct {
	renderer  Renderer
	OutputDir string
}

// NewQrCode writes codes into outputDir; a relative outputDir is resolved
// against the working directory.
func NewQrCode(renderer Renderer, outputDir string) (*QRCode, error) {
	if !filepath.IsAbs(outputDir) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve output directory: %w", err)
		}
		outputDir = filepath.Join(wd, outputDir)
	}

	return &QRCode{
		renderer:  renderer,
		OutputDir: outputDir,
	}, nil
}

// Generate renders content into <OutputDir>/<id>.png and returns the id and path.
func (q *QRCode) Generate(ctx context.Context, content string) (string, string, error) {
	data, err := q.renderer.GetQR(ctx, content)
	if err != nil {
		return "", "", err
	}

	id := uuid.New().String()
	filePath := filepath.Join(q.OutputDir, id+".png")

	if err = q.ensureOutputDir(); err != nil {
		return "", "", err
	}
	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return "", "", fmt.Errorf("failed to write QR code file: %w", err)
	}

	return id, filePath, nil
}

func (q *QRCode) ensureOutputDir() error {
	if _, err := os.Stat(q.OutputDir); os.IsNotExist(err) {
		err = os.MkdirAll(q.OutputDir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}

func (q *QRCode) Delete(filePath string) error {
	err := os.Remove(filePath)
	if err != nil {
		return fmt.Errorf("failed to delete QR code file: %w", err)
	}
	return nil
}
