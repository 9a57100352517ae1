// file: internals/helpers/oss/oss_media_service.go
package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

// batas ukuran upload media (guard ringan di controller)
const MaxMediaUploadSize = int64(50 * 1024 * 1024)

// dimensi maksimum foto sebelum di-encode ke WebP
const (
	maxImageW = 1600
	maxImageH = 1600
)

const webpQuality = float32(80)

/*
CenterMediaService — facade upload yang seragam untuk controller media.

Satu file per panggilan, dikelompokkan per center code:
  centers/<centerCode>/<nama>_<ts>_<rand>.<ext>
- foto  → re-encode WebP (hemat storage & bandwidth)
- video → upload apa adanya
*/
type CenterMediaService struct {
	svc *OSSService
}

func NewCenterMediaServiceFromEnv() (*CenterMediaService, error) {
	s, err := NewOSSServiceFromEnv("centers")
	if err != nil {
		return nil, err
	}
	return &CenterMediaService{svc: s}, nil
}

type UploadResult struct {
	FileURL  string `json:"file_url"`
	PublicID string `json:"public_id"` // object key di bucket
	FileType string `json:"file_type"` // "image" | "video"
}

// Upload mengunggah satu file media untuk sebuah center.
func (m *CenterMediaService) Upload(ctx context.Context, centerCode string, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > MaxMediaUploadSize {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Ukuran file melebihi 50MB")
	}
	code := strings.TrimSpace(centerCode)
	if code == "" {
		code = "default"
	}

	ct := fh.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "video/"):
		key, _, err := m.svc.UploadFromFormFileToDir(ctx, code, fh)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal upload video: %v", err))
		}
		return &UploadResult{FileURL: m.svc.PublicURL(key), PublicID: key, FileType: "video"}, nil

	case strings.HasPrefix(ct, "image/"):
		key, err := m.uploadImageAsWebP(ctx, code, fh)
		if err != nil {
			return nil, err
		}
		return &UploadResult{FileURL: m.svc.PublicURL(key), PublicID: key, FileType: "image"}, nil

	default:
		// sniff fallback: beberapa client tidak set Content-Type per part
		key, detected, err := m.svc.UploadFromFormFileToDir(ctx, code, fh)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal upload: %v", err))
		}
		ft := "image"
		if strings.HasPrefix(detected, "video/") {
			ft = "video"
		}
		return &UploadResult{FileURL: m.svc.PublicURL(key), PublicID: key, FileType: ft}, nil
	}
}

// Delete menghapus object berdasar URL publiknya.
func (m *CenterMediaService) Delete(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	if err := m.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal hapus object: %v", err))
	}
	return nil
}

func (m *CenterMediaService) uploadImageAsWebP(ctx context.Context, code string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Format gambar tidak didukung")
	}

	// downscale keep-aspect kalau melebihi batas
	b := img.Bounds()
	if b.Dx() > maxImageW || b.Dy() > maxImageH {
		img = imaging.Fit(img, maxImageW, maxImageH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal encode WebP")
	}

	name := fh.Filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	key := m.svc.buildObjectKey(code, name+".webp")
	if err := m.svc.UploadStream(ctx, key, bytes.NewReader(buf.Bytes()), "image/webp"); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal upload ke OSS: %v", err))
	}
	return key, nil
}
