package window

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ImageFormat describes the pixel layout of ImageData.
type ImageFormat int

const (
	FormatRGB888 ImageFormat = iota
	FormatRGBA8888
)

// BytesPerPixel returns the pixel stride of the format.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case FormatRGB888:
		return 3
	case FormatRGBA8888:
		return 4
	}
	panic(fmt.Sprintf("window: unsupported image format %d", int(f)))
}

func (f ImageFormat) String() string {
	switch f {
	case FormatRGB888:
		return "rgb888"
	case FormatRGBA8888:
		return "rgba8888"
	default:
		return fmt.Sprintf("ImageFormat(%d)", int(f))
	}
}

// ImageData is a raw 8 bits per channel image, rows packed without padding.
type ImageData struct {
	Format ImageFormat
	Width  int
	Height int
	Data   []byte
}

// NewImageData allocates a zeroed image.
func NewImageData(format ImageFormat, width, height int) *ImageData {
	return &ImageData{
		Format: format,
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height*format.BytesPerPixel()),
	}
}

// FlipVertical reverses the row order in place. Screenshots come back
// bottom row first; flip before handing them to top-down encoders.
func (d *ImageData) FlipVertical() {
	stride := d.Width * d.Format.BytesPerPixel()
	tmp := make([]byte, stride)
	for top, bottom := 0, d.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := d.Data[top*stride : (top+1)*stride]
		b := d.Data[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// ToNRGBA converts the data to an image.NRGBA with the same row order.
// The format must be FormatRGB888 or FormatRGBA8888.
func (d *ImageData) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	switch d.Format {
	case FormatRGBA8888:
		copy(img.Pix, d.Data)
	case FormatRGB888:
		for i, j := 0, 0; i+2 < len(d.Data) && j+3 < len(img.Pix); i, j = i+3, j+4 {
			img.Pix[j] = d.Data[i]
			img.Pix[j+1] = d.Data[i+1]
			img.Pix[j+2] = d.Data[i+2]
			img.Pix[j+3] = 0xff
		}
	default:
		panic(fmt.Sprintf("window: unsupported image format %v", d.Format))
	}
	return img
}

// Encode writes the image in the named format: "png", "bmp" or "tiff".
// Rows are written in stored order.
func (d *ImageData) Encode(w io.Writer, format string) error {
	img := d.ToNRGBA()
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image encoding %q", format)
	}
}

// SaveImage writes the image to path, picking the encoding from the file
// extension.
func (d *ImageData) SaveImage(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("save image %s: missing file extension", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	if err := d.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// iconSizes are the candidate sizes handed to the host; it picks the one
// closest to what the platform wants.
var iconSizes = []int{16, 32, 48}

// iconCandidates converts an icon to the host format: the source image
// plus downscaled copies for each smaller candidate size.
func iconCandidates(d *ImageData) []image.Image {
	src := d.ToNRGBA()
	images := []image.Image{src}
	for _, size := range iconSizes {
		if size >= d.Width || size >= d.Height {
			continue
		}
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		images = append(images, dst)
	}
	return images
}
