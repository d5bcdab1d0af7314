// Package qr оборачивает генерацию QR-кодов в data URL строку,
// пригодную для вставки прямо в JSON ответ.
package qr

import (
	"encoding/base64"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// pngSize размер стороны PNG изображения в пикселях.
const pngSize = 256

// Generator кодирует строки в QR data URL.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// DataURL кодирует content в PNG QR-код и возвращает его
// в виде `data:image/png;base64,...`.
func (g *Generator) DataURL(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, pngSize)
	if err != nil {
		return "", errors.Wrapf(err, "failed to encode qr code for `%s`", content)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
