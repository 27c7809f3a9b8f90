package image

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

const (
	// снимки товара ужимаются в этот квадрат с сохранением пропорций
	maxDimension = 1536
	jpegQuality  = 70
)

// Normalizer перекодирует фото товара в ограниченный по размеру JPEG.
// Снимки приходят с телефонов и без ужатия раздувают строки таблицы.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) Normalize(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode product image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	targetWidth, targetHeight := fitInBox(width, height, maxDimension)
	if targetWidth != width || targetHeight != height {
		dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode product image: %w", err)
	}

	return buf.Bytes(), nil
}

func fitInBox(width, height, box int) (int, int) {
	if width <= box && height <= box {
		return width, height
	}

	if width >= height {
		scaled := height * box / width
		if scaled < 1 {
			scaled = 1
		}
		return box, scaled
	}

	scaled := width * box / height
	if scaled < 1 {
		scaled = 1
	}
	return scaled, box
}
