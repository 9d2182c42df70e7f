package codec

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// EngineImaging is the default engine
const EngineImaging = "imaging"

func init() {
	RegisterEngine(EngineImaging, func() (Encoder, error) {
		return EncodeFunc(imagingEncode), nil
	})
}

func imagingEncode(src, dst string, opt Option) error {
	if err := opt.Validate(); err != nil {
		return wrapErr("validate", src, err)
	}
	im, err := imaging.Open(src)
	if err != nil {
		return wrapErr("decode", src, err)
	}

	var m image.Image
	w, h := int(opt.Width), int(opt.Height)
	if opt.Fit == FitContain {
		m = imaging.Fit(im, w, h, imaging.Lanczos)
	} else {
		m = imaging.Fill(im, w, h, imaging.Center, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, m, imaging.JPEG, imaging.JPEGQuality(opt.Quality)); err != nil {
		return wrapErr("encode", src, err)
	}
	return wrapErr("write", dst, writeFile(dst, buf.Bytes()))
}
