package raster

// Downsample box-filters visible rows [y0, y1) into dst as BGR bytes,
// stride bytes per row. Each pixel is the rounded mean of its
// scale×scale subpixel block. Rows outside the image are skipped, so
// disjoint row bands can be reduced concurrently.
func (s *Subpixels) Downsample(dst []byte, stride, y0, y1 int) {
	y0, y1 = max(y0, 0), min(y1, s.height)
	n := s.scale * s.scale
	half := n / 2
	for y := y0; y < y1; y++ {
		out := dst[y*stride : y*stride+3*s.width]
		for x := 0; x < s.width; x++ {
			var r, g, b int
			for sy := y * s.scale; sy < (y+1)*s.scale; sy++ {
				i := 3 * (sy*s.sw + x*s.scale)
				for k := 0; k < s.scale; k++ {
					r += int(s.pix[i])
					g += int(s.pix[i+1])
					b += int(s.pix[i+2])
					i += 3
				}
			}
			out[3*x+0] = uint8((b + half) / n)
			out[3*x+1] = uint8((g + half) / n)
			out[3*x+2] = uint8((r + half) / n)
		}
	}
}
