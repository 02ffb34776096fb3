//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"care-label-reader/internal/domain/entity"
)

// locateLabel ищет этикетку по каналу насыщенности: ткань обычно цветная,
// этикетка почти белая.
func (p *Pipeline) locateLabel(frame gocv.Mat) (entity.RotatedRegion, error) {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	channels := gocv.Split(hsv)
	for i := range channels {
		defer channels[i].Close()
	}
	if len(channels) < 3 {
		return entity.RotatedRegion{}, entity.ErrEmptyFrame
	}

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.MedianBlur(channels[1], &blur, p.cfg.LabelBlurKernel)
	p.observe("label_saturation", blur)

	thr := threshold(blur, p.cfg.LabelSaturationCut, ThresholdInverted)
	defer thr.Close()

	merged := openOp(thr, p.cfg.LabelMergeIterations)
	defer merged.Close()
	p.observe("label_mask", merged)

	contours := findContours(merged)
	defer contours.Close()
	if contours.Size() == 0 {
		return entity.RotatedRegion{}, entity.ErrNoLabelFound
	}

	idx := 0
	if p.cfg.LabelContour == entity.LabelContourLargest {
		idx = largestContour(contours)
	}
	return minAreaRect(contours.At(idx)).Normalize(), nil
}

// rectifyLabel снимает поворот этикетки, вырезает её и добавляет белые поля.
func (p *Pipeline) rectifyLabel(frame gocv.Mat, region entity.RotatedRegion) (gocv.Mat, error) {
	region = region.Normalize()

	aligned := rotate(frame, region.Center.Point(), region.Angle)
	defer aligned.Close()

	crop := cropToRotatedRegion(aligned, region)
	defer crop.Close()
	if crop.Empty() {
		return gocv.NewMat(), entity.ErrNoLabelFound
	}

	label := addBorder(crop, p.cfg.LabelPadding, white)
	p.observe("label", label)
	return label, nil
}
