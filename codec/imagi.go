package codec

import (
	imagi "github.com/go-imsto/imagi"

	"github.com/go-imsto/sliceresize/utils"
)

// EngineImagi uses imagi thumbnails, quality is imagi's own default
const EngineImagi = "imagi"

func init() {
	RegisterEngine(EngineImagi, func() (Encoder, error) {
		return EncodeFunc(imagiEncode), nil
	})
}

func imagiEncode(src, dst string, opt Option) error {
	if err := opt.Validate(); err != nil {
		return wrapErr("validate", src, err)
	}
	topt := &imagi.ThumbOption{
		Width:  opt.Width,
		Height: opt.Height,
		IsFit:  true,
		IsCrop: opt.Fit == FitCover,
	}
	topt.Format = FormatJPEG
	if err := imagi.ThumbnailFile(src, dst, topt); err != nil {
		utils.RemoveQuietly(dst)
		logger().Infow("imagi.ThumbnailFile fail", "src", src, "opt", opt.String(), "err", err)
		return wrapErr("thumbnail", src, err)
	}
	return nil
}
