package chemplot

import (
	"image/color"
	"math"
)

//Some internal convenience functions.

//minValue is the HSV value given to the atoms farthest from the camera.
const minValue = 0.55

//depthFraction maps depth to [0,1], 0 being the farthest atom and 1
//the closest. If all atoms are at the same depth, it returns 1.
func depthFraction(depth, min, max float64) float64 {
	if max-min < 1e-9 {
		return 1
	}
	return (depth - min) / (max - min)
}

//shade darkens c according to the depth fraction f. The closest
//atoms keep their color, and the farthest ones get minValue times
//its HSV value.
func shade(c color.RGBA, f float64) color.RGBA {
	h, s, v := rgb2HSV(c.R, c.G, c.B)
	v *= minValue + (1-minValue)*f
	r, g, b := iHSV2RGB(h, s, v)
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

//rgb2HSV takes r,g,b (0-255), returns hue (0-360), s and v (0-1)
func rgb2HSV(r, g, b uint8) (h, s, v float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	v = max
	d := max - min
	if max == 0 || d == 0 {
		return 0, 0, v
	}
	s = d / max
	switch max {
	case rf:
		h = math.Mod((gf-bf)/d, 6)
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

//takes hue (0-360), s and v (0-1), returns r,g,b (0-255)
func iHSV2RGB(h, s, v float64) (uint8, uint8, uint8) {
	var r, g, b float64
	maxcolor := 255.0
	if s == 0.0 {
		c := uint8(math.Round(maxcolor * v))
		return c, c, c
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(math.Round(r * maxcolor)), uint8(math.Round(g * maxcolor)), uint8(math.Round(b * maxcolor))
}
