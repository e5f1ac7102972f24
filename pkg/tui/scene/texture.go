package scene

import (
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// canvasSize is the edge of the reference canvas the texture layout is
// specified against.
const canvasSize = 512

// gradient stops of the sphere surface, centre to rim.
var gradient = []struct {
	at    float64
	color colorful.Color
}{
	{0, mustHex("#6d28d9")},
	{0.5, mustHex("#1e40af")},
	{1, mustHex("#0c1929")},
}

var noiseColor = mustHex("#94a3b8")

const (
	noiseAlpha = 0.1
	noiseRects = 100
)

// Texture is a square procedurally generated surface map, row-major from
// the top edge.
type Texture struct {
	Size   int
	Texels []colorful.Color
}

// gradientAt returns the radial gradient colour at normalized distance d
// from the centre. Distances past the rim keep the rim colour.
func gradientAt(d float64) colorful.Color {
	if d <= gradient[0].at {
		return gradient[0].color
	}
	for i := 1; i < len(gradient); i++ {
		if d <= gradient[i].at {
			lo, hi := gradient[i-1], gradient[i]
			t := (d - lo.at) / (hi.at - lo.at)
			return lo.color.BlendRgb(hi.color, t)
		}
	}
	return gradient[len(gradient)-1].color
}

// NewTexture paints the radial gradient and scatters translucent cloud
// rectangles drawn from r.
func NewTexture(r *rand.Rand, size int) *Texture {
	if size <= 0 {
		size = 1
	}
	t := &Texture{Size: size, Texels: make([]colorful.Color, size*size)}
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			t.Texels[y*size+x] = gradientAt(d)
		}
	}

	k := float64(size) / canvasSize
	for i := 0; i < noiseRects; i++ {
		x0 := int(r.Float64() * canvasSize * k)
		y0 := int(r.Float64() * canvasSize * k)
		w := int(math.Ceil(r.Float64() * 50 * k))
		h := int(math.Ceil(r.Float64() * 50 * k))
		for y := y0; y < min(y0+h, size); y++ {
			for x := x0; x < min(x0+w, size); x++ {
				idx := y*size + x
				t.Texels[idx] = t.Texels[idx].BlendRgb(noiseColor, noiseAlpha)
			}
		}
	}
	return t
}

// At samples the texture at u (left to right) and v (top to bottom), both
// in [0, 1]; u wraps around.
func (t *Texture) At(u, v float64) colorful.Color {
	u -= math.Floor(u)
	x := min(int(u*float64(t.Size)), t.Size-1)
	y := min(max(int(v*float64(t.Size)), 0), t.Size-1)
	return t.Texels[y*t.Size+x]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
