package qa

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SSIM stabilization constants for 8-bit luminance, per the standard
// formulation: C1 = (0.01 * L)^2, C2 = (0.03 * L)^2 with L = 255.
const (
	ssimC1 = 6.5025
	ssimC2 = 58.5225
)

// ssimWindow is the side length of the square comparison window.
const ssimWindow = 8

// ComputeSSIM decodes two images and returns their mean structural similarity
// over non-overlapping 8x8 luminance windows. The produced image is resized to
// the original's dimensions before comparison so renders at a different scale
// are still comparable.
func ComputeSSIM(original []byte, produced []byte) (float64, error) {
	origImg, err := imaging.Decode(bytes.NewReader(original))
	if err != nil {
		return 0, fmt.Errorf("failed to decode original image: %w", err)
	}
	prodImg, err := imaging.Decode(bytes.NewReader(produced))
	if err != nil {
		return 0, fmt.Errorf("failed to decode produced image: %w", err)
	}

	bounds := origImg.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < ssimWindow || height < ssimWindow {
		return 0, fmt.Errorf("original image %dx%d is smaller than the %dx%d comparison window", width, height, ssimWindow, ssimWindow)
	}

	origGray := imaging.Grayscale(origImg)
	prodGray := imaging.Grayscale(imaging.Resize(prodImg, width, height, imaging.Lanczos))

	return meanSSIM(origGray, prodGray, width, height), nil
}

func meanSSIM(a, b *image.NRGBA, width, height int) float64 {
	var sum float64
	var windows int

	for y := 0; y+ssimWindow <= height; y += ssimWindow {
		for x := 0; x+ssimWindow <= width; x += ssimWindow {
			sum += windowSSIM(a, b, x, y)
			windows++
		}
	}
	if windows == 0 {
		return 0
	}
	return sum / float64(windows)
}

// windowSSIM computes SSIM for one 8x8 window using luminance means,
// variances, and covariance.
func windowSSIM(a, b *image.NRGBA, x0, y0 int) float64 {
	const n = float64(ssimWindow * ssimWindow)

	var sumA, sumB float64
	var sumAA, sumBB, sumAB float64

	for y := y0; y < y0+ssimWindow; y++ {
		for x := x0; x < x0+ssimWindow; x++ {
			// Grayscale NRGBA stores luminance in all three channels.
			va := float64(a.Pix[a.PixOffset(x, y)])
			vb := float64(b.Pix[b.PixOffset(x, y)])
			sumA += va
			sumB += vb
			sumAA += va * va
			sumBB += vb * vb
			sumAB += va * vb
		}
	}

	meanA := sumA / n
	meanB := sumB / n
	varA := sumAA/n - meanA*meanA
	varB := sumBB/n - meanB*meanB
	covAB := sumAB/n - meanA*meanB

	num := (2*meanA*meanB + ssimC1) * (2*covAB + ssimC2)
	den := (meanA*meanA + meanB*meanB + ssimC1) * (varA + varB + ssimC2)
	return num / den
}
