package naming

import "testing"

func TestDetectExtension(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, "jpg"},
		{"png", []byte("\x89PNG\r\n\x1a\n0000"), "png"},
		{"gif", []byte("GIF89a..."), "gif"},
		{"bmp", []byte("BM\x00\x00\x00\x00"), "bmp"},
		{"tiff little endian", []byte("II*\x00data"), "tif"},
		{"tiff big endian", []byte("MM\x00*data"), "tif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "webp"},
		{"riff but not webp", []byte("RIFF\x00\x00\x00\x00WAVEfmt "), "png"},
		{"unrecognized", []byte("random bytes"), "png"},
		{"truncated png header", []byte("\x89PN"), "png"},
		{"empty", nil, "png"},
	}

	for _, tt := range tests {
		if got := DetectExtension(tt.data); got != tt.expected {
			t.Errorf("DetectExtension(%s) = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}
