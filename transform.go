package bigearthnet

// Compose chains transform stages left to right.
func Compose(stages ...Transform) Transform {
	return func(s Sample) Sample {
		for _, stage := range stages {
			s = stage(s)
		}
		return s
	}
}

// SelectChannels keeps only the listed channels of a 3-D image, in the
// listed order.
func SelectChannels(channels ...int) Transform {
	idx := make([]int, len(channels))
	copy(idx, channels)
	return func(s Sample) Sample {
		img := s.Image
		if img == nil || len(img.Shape) != 3 {
			return s
		}
		h, w := img.Shape[1], img.Shape[2]
		plane := h * w
		out := NewTensor(len(idx), h, w)
		for i, c := range idx {
			copy(out.Data[i*plane:(i+1)*plane], img.Data[c*plane:(c+1)*plane])
		}
		s.Image = out
		return s
	}
}

// Normalize applies per-channel (x-mean)/std to a 3-D image. means and stds
// must have one entry per channel.
func Normalize(means, stds []float32) Transform {
	return func(s Sample) Sample {
		img := s.Image
		if img == nil || len(img.Shape) != 3 {
			return s
		}
		out := img.Clone()
		plane := img.Shape[1] * img.Shape[2]
		for c := 0; c < img.Shape[0]; c++ {
			mean, std := means[c], stds[c]
			seg := out.Data[c*plane : (c+1)*plane]
			for i := range seg {
				seg[i] = (seg[i] - mean) / std
			}
		}
		s.Image = out
		return s
	}
}

// Unsqueeze inserts a singleton axis at the given position, e.g. to add the
// time dimension some temporal models expect. The facade squeezes a
// singleton second axis back out after the transform runs.
func Unsqueeze(axis int) Transform {
	return func(s Sample) Sample {
		img := s.Image
		if img == nil || axis < 0 || axis > len(img.Shape) {
			return s
		}
		shape := make([]int, 0, len(img.Shape)+1)
		shape = append(shape, img.Shape[:axis]...)
		shape = append(shape, 1)
		shape = append(shape, img.Shape[axis:]...)
		s.Image = &Tensor{Shape: shape, Data: img.Data}
		return s
	}
}

// Resize bilinearly rescales every channel of a 3-D image to the given
// spatial shape.
func Resize(height, width int) Transform {
	return func(s Sample) Sample {
		img := s.Image
		if img == nil || len(img.Shape) != 3 {
			return s
		}
		c, sh, sw := img.Shape[0], img.Shape[1], img.Shape[2]
		if sh == height && sw == width {
			return s
		}
		out := NewTensor(c, height, width)
		for ch := 0; ch < c; ch++ {
			src := img.Data[ch*sh*sw : (ch+1)*sh*sw]
			dst := out.Data[ch*height*width : (ch+1)*height*width]
			resampleBilinear(src, sh, sw, dst, height, width)
		}
		s.Image = out
		return s
	}
}

// resampleBilinear maps dst pixel centers back into src coordinates and
// blends the four surrounding samples. Pixel-center alignment matches the
// convention the raster reader's scaler uses.
func resampleBilinear(src []float32, sh, sw int, dst []float32, dh, dw int) {
	scaleY := float64(sh) / float64(dh)
	scaleX := float64(sw) / float64(dw)
	for y := 0; y < dh; y++ {
		fy := (float64(y)+0.5)*scaleY - 0.5
		y0 := int(fy)
		if fy < 0 {
			fy, y0 = 0, 0
		}
		y1 := y0 + 1
		if y1 >= sh {
			y1 = sh - 1
		}
		wy := float32(fy - float64(y0))
		for x := 0; x < dw; x++ {
			fx := (float64(x)+0.5)*scaleX - 0.5
			x0 := int(fx)
			if fx < 0 {
				fx, x0 = 0, 0
			}
			x1 := x0 + 1
			if x1 >= sw {
				x1 = sw - 1
			}
			wx := float32(fx - float64(x0))

			top := src[y0*sw+x0]*(1-wx) + src[y0*sw+x1]*wx
			bot := src[y1*sw+x0]*(1-wx) + src[y1*sw+x1]*wx
			dst[y*dw+x] = top*(1-wy) + bot*wy
		}
	}
}

// squeezeTimeAxis removes a singleton second axis from a 4-D image, undoing
// an Unsqueeze(1) applied by a transform pipeline.
func squeezeTimeAxis(img *Tensor) *Tensor {
	if img == nil || len(img.Shape) != 4 || img.Shape[1] != 1 {
		return img
	}
	shape := []int{img.Shape[0], img.Shape[2], img.Shape[3]}
	return &Tensor{Shape: shape, Data: img.Data}
}
