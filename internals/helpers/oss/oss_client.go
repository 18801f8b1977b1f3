// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

var (
	// batas ukuran gambar di uploader (guard ringan; video tidak dibatasi di sini)
	maxImageUploadSize = int64(5 * 1024 * 1024)
)

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	Prefix     string // optional: "cms/"

	bucket *oss.Bucket // client default (pakai kredensial ENV, tanpa token per-request)
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Endpoint:   endpoint,
		AccessKey:  ak,
		SecretKey:  sk,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
		bucket:     bkt,
	}, nil
}

// bucketFor memilih bucket handle sesuai token per-request.
// Token kosong → client default; token terisi → client baru dengan STS token.
func (s *OSSService) bucketFor(token string) (*oss.Bucket, error) {
	if strings.TrimSpace(token) == "" {
		return s.bucket, nil
	}
	client, err := oss.New(s.Endpoint, s.AccessKey, s.SecretKey, oss.SecurityToken(token))
	if err != nil {
		return nil, fmt.Errorf("oss.New (token): %w", err)
	}
	return client.Bucket(s.BucketName)
}

/* =======================================================================
   Upload helpers
======================================================================= */

// UploadImage: re-encode gambar ke WebP lalu upload ke <dir>/.
// Dipakai semua slot gambar (uploads/, thumbnails/).
func (s *OSSService) UploadImage(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxImageUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", maxImageUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", err
	}

	// ganti ekstensi jadi .webp
	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey(dir, base+".webp")

	bkt, err := s.bucketFor(token)
	if err != nil {
		return "", err
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := bkt.PutObject(key, bytes.NewReader(webpData), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// UploadRaw: upload apa adanya (tanpa recompress) — video dan file non-gambar.
func (s *OSSService) UploadRaw(ctx context.Context, token, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct, reader, err := detectContentType(src, fh.Filename)
	if err != nil {
		return "", err
	}

	key := s.buildObjectKey(dir, fh.Filename)
	bkt, err := s.bucketFor(token)
	if err != nil {
		return "", err
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := bkt.PutObject(key, reader, opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

/* =======================================================================
   Delete
======================================================================= */

func (s *OSSService) DeleteByPublicURL(ctx context.Context, token, publicURL string) error {
	key, err := KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	bkt, err := s.bucketFor(token)
	if err != nil {
		return err
	}
	return bkt.DeleteObject(key, oss.WithContext(ctx))
}

/* =======================================================================
   Public URL & Key utils
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func KeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 && i+1 < len(u) {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

/* =======================================================================
   Misc utils
======================================================================= */

// buildObjectKey: <prefix>/<dir>/<slug>_<ts>_<rand>.<ext>
// Timestamp + random suffix supaya nama file yang sama tidak saling timpa.
func (s *OSSService) buildObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = slugify(base)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s_%s%s", base, ts, randHex(3), ext)

	return joinParts(s.Prefix, strings.Trim(dir, "/"), name)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func randHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000)
	}
	return hex.EncodeToString(buf)
}

func detectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	// coba dari ekstensi dulu, fallback sniff 512 byte pertama
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct, src, nil
	}
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", nil, err
	}
	ct := http.DetectContentType(head[:n])
	return ct, io.MultiReader(bytes.NewReader(head[:n]), src), nil
}

func joinParts(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}
