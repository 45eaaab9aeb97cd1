package imageio

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // Register BMP format decoder
)

// JPEGQuality is the quality used when saving JPEG output.
const JPEGQuality = 95

// Load reads and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path to the image.
//
// Returns:
//   - image.Image: The decoded image, rotated upright according to any EXIF
//     orientation tag.
//   - error: Non-nil if the file cannot be opened or decoded.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}

// Save encodes img to path, choosing the format from the file extension.
func Save(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(JPEGQuality), nil
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", filepath.Ext(path))
	}
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", "bmp", or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info describes an already loaded image and the file it came from.
func Info(path string, img image.Image) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
