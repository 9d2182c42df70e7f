package codec

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// EngineResize scales with nfnt/resize and crops in memory
const EngineResize = "resize"

func init() {
	RegisterEngine(EngineResize, func() (Encoder, error) {
		return EncodeFunc(resizeEncode), nil
	})
}

// boxPlan is the scaled size of the source and the crop offset into it
type boxPlan struct {
	scaleW, scaleH uint
	cropX, cropY   int
}

func planBox(ow, oh uint, opt Option) boxPlan {
	ratioX := float64(opt.Width) / float64(ow)
	ratioY := float64(opt.Height) / float64(oh)

	if opt.Fit == FitContain {
		p := boxPlan{scaleW: opt.Width, scaleH: opt.Height}
		if ratioX < ratioY {
			p.scaleH = maxUint(1, uint(ratioX*float64(oh)))
		} else {
			p.scaleW = maxUint(1, uint(ratioY*float64(ow)))
		}
		return p
	}

	p := boxPlan{}
	if ratioX > ratioY {
		p.scaleW = opt.Width
		p.scaleH = maxUint(opt.Height, uint(ratioX*float64(oh)))
	} else {
		p.scaleH = opt.Height
		p.scaleW = maxUint(opt.Width, uint(ratioY*float64(ow)))
	}
	p.cropX = int(p.scaleW-opt.Width) / 2
	p.cropY = int(p.scaleH-opt.Height) / 2
	return p
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

func resizeImage(img image.Image, opt Option) image.Image {
	ob := img.Bounds()
	p := planBox(uint(ob.Dx()), uint(ob.Dy()), opt)

	buf := resize.Resize(p.scaleW, p.scaleH, img, resize.Bicubic)
	if opt.Fit == FitContain {
		return buf
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(opt.Width), int(opt.Height)))
	pt := buf.Bounds().Min.Add(image.Point{p.cropX, p.cropY})
	draw.Draw(dst, dst.Bounds(), buf, pt, draw.Src)
	return dst
}

func resizeEncode(src, dst string, opt Option) error {
	if err := opt.Validate(); err != nil {
		return wrapErr("validate", src, err)
	}
	im, format, err := readImage(src)
	if err != nil {
		return wrapErr("decode", src, err)
	}
	logger().Debugw("resize", "src", src, "format", format, "opt", opt.String())

	if err = writeJPEG(dst, resizeImage(im, opt), opt.Quality); err != nil {
		return wrapErr("write", dst, err)
	}
	return nil
}
