package codec

import (
	"bufio"
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-imsto/sliceresize/utils"
)

func readImage(filename string) (image.Image, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(bufio.NewReader(f))
}

// writeJPEG encodes into memory first so a failed encode never creates dst
func writeJPEG(dst string, m image.Image, quality int) error {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, m, &jpeg.Options{Quality: quality}); err != nil {
		return err
	}
	return writeFile(dst, buf.Bytes())
}

func writeFile(dst string, data []byte) error {
	if err := os.WriteFile(dst, data, os.FileMode(0644)); err != nil {
		utils.RemoveQuietly(dst)
		return err
	}
	return nil
}
