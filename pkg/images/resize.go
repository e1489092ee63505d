package images

import (
	"bytes"
	"image"
	_ "image/gif" // デコード対応フォーマットの登録なのだ
	"image/jpeg"
	"image/png"
	"log/slog"

	"github.com/nfnt/resize"
)

const (
	// resizeThresholdBytes を超えるペイロードは幅に関係なく縮小を試みるのだ。
	resizeThresholdBytes = 4 << 20 // ~4MB
	// reencodeQuality は JPEG 再エンコード時の品質なのだ。
	reencodeQuality = 85
)

// shrinkToWidth は必要に応じて画像を maxWidth 以下に縮小して再エンコードするのだ。
// アスペクト比は維持し、デコードや再エンコードに失敗したときは
// 元のバイト列と MIME タイプをそのまま返すのだ。
func shrinkToWidth(data []byte, mimeType string, maxWidth int) ([]byte, string) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Warn("画像のデコードに失敗したので元データを使うのだ", "error", err)
		return data, mimeType
	}

	width := img.Bounds().Dx()
	if width <= maxWidth && len(data) <= resizeThresholdBytes {
		return data, mimeType
	}

	resized := resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			slog.Warn("PNG再エンコードに失敗したので元データを使うのだ", "error", err)
			return data, mimeType
		}
		return buf.Bytes(), "image/png"
	default:
		// JPEG を含むその他のフォーマットは JPEG として書き出すのだ
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: reencodeQuality}); err != nil {
			slog.Warn("JPEG再エンコードに失敗したので元データを使うのだ", "error", err)
			return data, mimeType
		}
		return buf.Bytes(), "image/jpeg"
	}
}
