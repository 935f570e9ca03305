// Package qr generates, renders and opens QR-Codes.
package qr

import (
	"errors"
	"fmt"
	"os"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/mateconpizza/pinb/internal/sys"
)

var ErrQRFileNotFound = errors.New("QR-Code file not found")

// QRCode represents a QR-Code.
type QRCode struct {
	qr   *qrcode.QRCode
	file *os.File
	From string
}

// New creates a QR-Code from a given string.
func New(from string) (*QRCode, error) {
	q, err := qrcode.New(from, qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("generating qr-code: %w", err)
	}

	return &QRCode{qr: q, From: from}, nil
}

// GenerateImg renders the QR-Code into a temporary PNG file.
func (q *QRCode) GenerateImg(prefix string) error {
	var err error

	q.file, err = generatePNG(q.qr, prefix)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	return nil
}

// Open opens the QR-Code image with the default system viewer.
func (q *QRCode) Open() error {
	if q.file == nil {
		return ErrQRFileNotFound
	}

	if err := sys.OpenFile(q.file.Name()); err != nil {
		return fmt.Errorf("%w: opening QR", err)
	}

	return nil
}

// Label adds a label to the image, position top or bottom.
func (q *QRCode) Label(s, pos string) error {
	if q.file == nil {
		return ErrQRFileNotFound
	}

	return addLabel(q.file.Name(), s, pos)
}

// Render renders the QR-Code to the standard output.
func (q *QRCode) Render() {
	fmt.Print(q.String())
}

func (q *QRCode) String() string {
	return q.qr.ToSmallString(true)
}
