package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestCompressBoundsLargeImages(t *testing.T) {
	data, err := Compress(bytes.NewReader(testImage(t, 2400, 1200)))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() > maxDimension || img.Bounds().Dy() > maxDimension {
		t.Fatalf("output exceeds bound: %v", img.Bounds())
	}
}

func TestCompressKeepsSmallImages(t *testing.T) {
	data, err := Compress(bytes.NewReader(testImage(t, 100, 80)))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Fatalf("small image must keep its size, got %v", img.Bounds())
	}
}

func TestCompressRejectsGarbage(t *testing.T) {
	if _, err := Compress(strings.NewReader("not an image")); err == nil {
		t.Fatal("expected decode failure")
	}
}

type stubPutter struct {
	err     error
	lastKey string
}

func (s *stubPutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if params.Key != nil {
		s.lastKey = *params.Key
	}
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestSaveReceiptReturnsPublicURL(t *testing.T) {
	putter := &stubPutter{}
	u := &Uploader{store: putter, bucket: "receipts", publicBase: "https://blob.example.com"}

	url, err := u.SaveReceipt(context.Background(), bytes.NewReader(testImage(t, 50, 50)))
	if err != nil {
		t.Fatalf("save receipt: %v", err)
	}
	if !strings.HasPrefix(url, "https://blob.example.com/receipts/") || !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("unexpected url %q", url)
	}
	if putter.lastKey == "" || !strings.HasPrefix(putter.lastKey, "receipts/") {
		t.Fatalf("unexpected object key %q", putter.lastKey)
	}
}

func TestSaveReceiptSurfacesStoreError(t *testing.T) {
	putter := &stubPutter{err: errors.New("bucket unavailable")}
	u := &Uploader{store: putter, bucket: "receipts", publicBase: "https://blob.example.com"}

	_, err := u.SaveReceipt(context.Background(), bytes.NewReader(testImage(t, 50, 50)))
	if err == nil || !strings.Contains(err.Error(), "bucket unavailable") {
		t.Fatalf("expected underlying message surfaced, got %v", err)
	}
}
