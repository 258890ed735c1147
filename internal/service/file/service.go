package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// MaxProfileImageSize is the largest width and height a stored profile image may have.
const MaxProfileImageSize = 400

// MaxSourcePixels bounds the canvas an uploaded image may declare before it
// is decoded.
const MaxSourcePixels = 40_000_000

type FileService interface {
	// UploadProfileImage validates, downsizes and stores a profile image and
	// returns its storage key.
	UploadProfileImage(ctx context.Context, file io.Reader, filename string) (string, error)
	DeleteFile(ctx context.Context, path string) error
	// PublicURL resolves a storage key to a URL. Empty keys map to "".
	PublicURL(ctx context.Context, path string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadProfileImage implements FileService.
func (s *fileServiceImpl) UploadProfileImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", employee.ErrInvalidImage
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read profile image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", employee.ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return "", fmt.Errorf("%w: dimensions %dx%d too large", employee.ErrInvalidImage, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", employee.ErrInvalidImage, err)
	}

	img = limitSize(img, MaxProfileImageSize)

	buf := new(bytes.Buffer)
	contentType := "image/jpeg"
	if format == "png" {
		ext = ".png"
		contentType = "image/png"
		err = png.Encode(buf, img)
	} else {
		ext = ".jpg"
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode profile image: %w", err)
	}

	key := path.Join("profile-images", uuid.New().String()+ext)
	uploadedPath, err := s.storage.Upload(ctx, buf, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	return s.storage.Delete(ctx, path)
}

// PublicURL implements FileService.
func (s *fileServiceImpl) PublicURL(ctx context.Context, path string) string {
	if path == "" {
		return ""
	}
	url, err := s.storage.GetURL(ctx, path, 24*time.Hour)
	if err != nil {
		slog.Warn("Failed to resolve file URL", "path", path, "error", err)
		return ""
	}
	return url
}

// limitSize scales img down so neither side exceeds max, keeping the aspect
// ratio. Smaller images are returned unchanged.
func limitSize(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= max && h <= max {
		return img
	}

	newW, newH := max, max
	if w > h {
		newH = h * max / w
	} else {
		newW = w * max / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return resizeImage(img, newW, newH)
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
