package export

import (
	"github.com/skip2/go-qrcode"

	domain "github.com/yanqian/travel-planner/internal/domain/export"
)

// QREncoder produces square PNG QR codes.
type QREncoder struct {
	size int
}

// NewQREncoder constructs an encoder; size is the PNG edge in pixels.
func NewQREncoder(size int) *QREncoder {
	if size <= 0 {
		size = 256
	}
	return &QREncoder{size: size}
}

func (e *QREncoder) Encode(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, e.size)
}

var _ domain.QREncoder = (*QREncoder)(nil)
