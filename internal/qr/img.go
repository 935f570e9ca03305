package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/mateconpizza/pinb/internal/sys/files"
)

// position is a position on an image.
type position struct {
	x, y int
}

// renderOpts holds the target bitmap, font face and label placement.
type renderOpts struct {
	bitmap  *image.RGBA
	face    *basicfont.Face
	calcPos func(string, *font.Drawer) position
}

// loadImage opens an image file and decodes it as an `image.Image`.
func loadImage(s string) (image.Image, error) {
	f, err := os.Open(s)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing image file", "error", err)
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	return img, nil
}

// createFontDrawer creates a font drawer positioned for the given label.
func createFontDrawer(s string, ro renderOpts) *font.Drawer {
	fd := &font.Drawer{
		Dst:  ro.bitmap,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: ro.face,
	}

	pos := ro.calcPos(s, fd)
	fd.Dot = fixed.Point26_6{X: fixed.I(pos.x), Y: fixed.I(pos.y)}

	return fd
}

// addLabel adds a label to an image, with the given position.
func addLabel(path, text, pos string) error {
	img, err := loadImage(path)
	if err != nil {
		return err
	}

	bitmap := image.NewRGBA(img.Bounds())
	draw.Draw(bitmap, bitmap.Bounds(), img, image.Point{}, draw.Src)

	opts := renderOpts{
		bitmap: bitmap,
	}

	switch pos {
	case "top":
		opts.face = inconsolata.Bold8x16
		opts.calcPos = calcTop
	default:
		opts.face = inconsolata.Regular8x16
		opts.calcPos = calcBottom
	}

	fd := createFontDrawer(text, opts)
	fd.DrawString(text)

	f, err := files.Touch(path, true)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("closing output file", "error", err)
		}
	}()

	if err := png.Encode(f, bitmap); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}

	return nil
}

// calcBottom centers the label near the bottom edge.
func calcBottom(s string, fd *font.Drawer) position {
	labelWidth := fd.MeasureString(s).Ceil()
	labelHeight := fd.Face.Metrics().Height.Ceil()

	x := (fd.Dst.Bounds().Dx() - labelWidth) / 2
	y := fd.Dst.Bounds().Dy() - labelHeight

	return position{x, y}
}

// calcTop centers the label one text line below the top edge.
func calcTop(s string, fd *font.Drawer) position {
	labelWidth := fd.MeasureString(s).Ceil()
	labelHeight := fd.Face.Metrics().Height.Ceil()

	x := (fd.Dst.Bounds().Dx() - labelWidth) / 2
	y := labelHeight + fd.Face.Metrics().Height.Ceil()

	return position{x, y}
}

// generatePNG writes the QR-Code to a temp PNG file.
func generatePNG(qr *qrcode.QRCode, prefix string) (*os.File, error) {
	const imgSize = 512

	qrfile, err := files.CreateTemp(prefix, "png")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	if err := qr.WriteFile(imgSize, qrfile.Name()); err != nil {
		return nil, fmt.Errorf("writing qr-code: %w", err)
	}

	return qrfile, nil
}
