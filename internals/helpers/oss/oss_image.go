// internals/helpers/oss/oss_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // quality encode (lossy)
}

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("OSS_WEBP_MAX_W", 1600),
		MaxH:    envInt("OSS_WEBP_MAX_H", 1600),
		Quality: envFloat("OSS_WEBP_QUALITY", 80),
	}
}

/* =======================================================================
   Decode / resize / encode
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	low := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(low, ".webp"):
		return webp.Decode(bytes.NewReader(all))
	case strings.HasSuffix(low, ".png"):
		return png.Decode(bytes.NewReader(all))
	case strings.HasSuffix(low, ".jpg"), strings.HasSuffix(low, ".jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	}
	// fallback: deteksi dari isi
	img, _, err := image.Decode(bytes.NewReader(all))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak didukung (pakai jpg/png/webp)")
	}
	return img, nil
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}

	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Max(1, math.Round(float64(w)*scale)))
	nh := int(math.Max(1, math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP membaca seluruh file, resize bila melebihi batas ENV,
// lalu encode ke WebP lossy.
func ConvertToWebP(file io.Reader, filename string) ([]byte, error) {
	return ConvertToWebPWithOptions(file, filename, defaultWebPOptionsFromEnv())
}

func ConvertToWebPWithOptions(file io.Reader, filename string, opts WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("baca file: %w", err)
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}

	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
