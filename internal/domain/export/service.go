package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/travel-planner/internal/domain/planner"
	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

// PDFRenderer lays a plan out as a printable document.
type PDFRenderer interface {
	Render(plan planner.TripPlan, shareURL string) ([]byte, error)
}

// QREncoder turns a URL into a PNG QR code.
type QREncoder interface {
	Encode(content string) ([]byte, error)
}

// ObjectStorage persists exported documents and hands out temporary links.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Document is an exported plan. URL is set when the file was uploaded.
type Document struct {
	Filename string
	Data     []byte
	URL      string
}

// Config controls uploads of exported documents.
type Config struct {
	PresignTTL time.Duration
}

// Service exports plans as PDF documents and share codes.
type Service interface {
	PlanPDF(ctx context.Context, plan planner.TripPlan, shareURL string) (Document, error)
	ShareQR(ctx context.Context, shareURL string) ([]byte, error)
}

type service struct {
	cfg      Config
	renderer PDFRenderer
	qr       QREncoder
	storage  ObjectStorage
	logger   *slog.Logger
}

// NewService wires up the export domain. storage may be nil.
func NewService(cfg Config, renderer PDFRenderer, qr QREncoder, storage ObjectStorage, logger *slog.Logger) Service {
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = 15 * time.Minute
	}
	return &service{
		cfg:      cfg,
		renderer: renderer,
		qr:       qr,
		storage:  storage,
		logger:   logger.With("component", "export.service"),
	}
}

func (s *service) PlanPDF(ctx context.Context, plan planner.TripPlan, shareURL string) (Document, error) {
	data, err := s.renderer.Render(plan, shareURL)
	if err != nil {
		return Document{}, apperrors.Wrap(apperrors.CodeExportFailed, "Could not export this plan", err)
	}
	doc := Document{Filename: Filename(plan.Destination), Data: data}
	if s.storage == nil {
		return doc, nil
	}

	key := fmt.Sprintf("plans/%s/%s", time.Now().UTC().Format("2006/01/02"), uuid.NewString()+".pdf")
	if err := s.storage.Put(ctx, key, data, "application/pdf"); err != nil {
		// the caller still gets the document inline
		s.logger.Warn("plan upload failed", "key", key, "error", err)
		return doc, nil
	}
	link, err := s.storage.PresignGet(ctx, key, s.cfg.PresignTTL)
	if err != nil {
		s.logger.Warn("presign failed", "key", key, "error", err)
		return doc, nil
	}
	s.logger.Info("plan exported", "key", key, "bytes", len(data))
	doc.URL = link
	return doc, nil
}

func (s *service) ShareQR(_ context.Context, shareURL string) ([]byte, error) {
	if shareURL == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "Nothing to share yet", nil)
	}
	png, err := s.qr.Encode(shareURL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeExportFailed, "Could not create a share code", err)
	}
	return png, nil
}

// Filename derives a download name such as "bali-travel-plan.pdf".
func Filename(destination string) string {
	slug := make([]rune, 0, len(destination))
	dash := false
	for _, r := range planner.NormalizeDestination(destination) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			slug = append(slug, r)
			dash = false
		case !dash && len(slug) > 0:
			slug = append(slug, '-')
			dash = true
		}
	}
	name := string(slug)
	for len(name) > 0 && name[len(name)-1] == '-' {
		name = name[:len(name)-1]
	}
	if name == "" {
		name = "trip"
	}
	return name + "-travel-plan.pdf"
}
