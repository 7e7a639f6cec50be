package ocr

import (
	"image"
	"image/color"
	"math"
)

// grayGrid is a luminance matrix used for thresholding and template matching.
type grayGrid struct {
	w, h int
	pix  []float64
}

func gridFrom(img image.Image) *grayGrid {
	b := img.Bounds()
	g := &grayGrid{w: b.Dx(), h: b.Dy(), pix: make([]float64, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gg, bb, _ := img.At(x, y).RGBA()
			g.pix[i] = float64((r + gg + bb) / 3 >> 8)
			i++
		}
	}
	return g
}

func (g *grayGrid) at(x, y int) float64 { return g.pix[y*g.w+x] }

// otsuThreshold picks the global binarization threshold that maximizes
// between-class variance over the luminance histogram.
func otsuThreshold(g *grayGrid) uint8 {
	var hist [256]int
	for _, v := range g.pix {
		hist[int(v)]++
	}
	total := float64(len(g.pix))
	var sum float64
	for i, c := range hist {
		sum += float64(i) * float64(c)
	}
	var sumB, wB float64
	best := 0.0
	thr := 0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			thr = t
		}
	}
	return uint8(thr)
}

// binarize performs a simple global threshold on a grayscale image.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			gray := uint8((r + g + bb) / 3 >> 8)
			var v uint8 = 255
			if gray <= threshold {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}

// matchTemplate slides tpl over img and returns the best normalized
// cross-correlation score with the top-left corner it occurs at. The scan is
// exhaustive; the templates are small icons and the inputs single screenshot
// crops, so brute force stays affordable.
func matchTemplate(img, tpl *grayGrid) (float64, image.Point) {
	if tpl.w > img.w || tpl.h > img.h || len(tpl.pix) == 0 {
		return 0, image.Point{}
	}
	var tMean float64
	for _, v := range tpl.pix {
		tMean += v
	}
	tMean /= float64(len(tpl.pix))
	var tVar float64
	for _, v := range tpl.pix {
		d := v - tMean
		tVar += d * d
	}

	best := 0.0
	bestAt := image.Point{}
	n := float64(tpl.w * tpl.h)
	for oy := 0; oy <= img.h-tpl.h; oy++ {
		for ox := 0; ox <= img.w-tpl.w; ox++ {
			var mean float64
			for y := 0; y < tpl.h; y++ {
				for x := 0; x < tpl.w; x++ {
					mean += img.at(ox+x, oy+y)
				}
			}
			mean /= n
			var num, den float64
			for y := 0; y < tpl.h; y++ {
				for x := 0; x < tpl.w; x++ {
					di := img.at(ox+x, oy+y) - mean
					dt := tpl.at(x, y) - tMean
					num += di * dt
					den += di * di
				}
			}
			den = math.Sqrt(den * tVar)
			if den == 0 {
				continue
			}
			if score := num / den; score > best {
				best = score
				bestAt = image.Point{X: ox, Y: oy}
			}
		}
	}
	return best, bestAt
}

// blackout fills the rectangle with black, clipped to the image bounds.
func blackout(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
		}
	}
}
