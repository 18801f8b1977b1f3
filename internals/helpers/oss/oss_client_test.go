package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Laporan Tahunan 2024.pdf", "laporan-tahunan-2024-pdf"},
		{"  Foto--Tim  ", "foto-tim"},
		{"___", ""},
		{"UPPER", "upper"},
		{"a", "a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func TestJoinParts(t *testing.T) {
	assert.Equal(t, "cms/uploads/a.webp", joinParts("cms/", "/uploads", "a.webp"))
	assert.Equal(t, "uploads/a.webp", joinParts("", "uploads", "a.webp"))
	assert.Equal(t, "a.webp", joinParts("", "", "a.webp"))
}

func TestBuildObjectKey(t *testing.T) {
	s := &OSSService{Prefix: "cms"}
	key := s.buildObjectKey("uploads", "Logo Baru.PNG")

	assert.True(t, strings.HasPrefix(key, "cms/uploads/logo-baru_"), "key=%s", key)
	assert.True(t, strings.HasSuffix(key, ".png"), "key=%s", key)

	// dua panggilan dengan nama sama tidak boleh bentrok
	other := s.buildObjectKey("uploads", "Logo Baru.PNG")
	assert.NotEqual(t, key, other)
}

func TestBuildObjectKey_EmptyBase(t *testing.T) {
	s := &OSSService{}
	key := s.buildObjectKey("videos", "___.mp4")
	assert.True(t, strings.HasPrefix(key, "videos/file_"), "key=%s", key)
	assert.True(t, strings.HasSuffix(key, ".mp4"), "key=%s", key)
}

func TestPublicURL_FromEndpoint(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")
	s := &OSSService{Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", BucketName: "profilku"}
	assert.Equal(t,
		"https://profilku.oss-ap-southeast-5.aliyuncs.com/uploads/a.webp",
		s.PublicURL("uploads/a.webp"))
	assert.Equal(t, "", s.PublicURL(""))
}

func TestPublicURL_WithPublicBase(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.example.com/")
	s := &OSSService{Endpoint: "oss-ap-southeast-5.aliyuncs.com", BucketName: "profilku"}
	assert.Equal(t, "https://cdn.example.com/uploads/a.webp", s.PublicURL("uploads/a.webp"))
}

func TestKeyFromPublicURL(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")

	key, err := KeyFromPublicURL("https://profilku.oss-ap-southeast-5.aliyuncs.com/uploads/a_x.webp")
	require.NoError(t, err)
	assert.Equal(t, "uploads/a_x.webp", key)

	_, err = KeyFromPublicURL("")
	assert.Error(t, err)

	_, err = KeyFromPublicURL("https://host-tanpa-path")
	assert.Error(t, err)
}

func TestKeyFromPublicURL_WithPublicBase(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.example.com")
	key, err := KeyFromPublicURL("https://cdn.example.com/uploads/a.webp")
	require.NoError(t, err)
	assert.Equal(t, "uploads/a.webp", key)
}

func TestRoundTripKeyURL(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")
	s := &OSSService{Endpoint: "oss-ap-southeast-5.aliyuncs.com", BucketName: "profilku", Prefix: "cms"}
	orig := s.buildObjectKey("thumbnails", "thumb.jpg")
	got, err := KeyFromPublicURL(s.PublicURL(orig))
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}
