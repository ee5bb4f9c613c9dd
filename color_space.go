package hdrpix

import (
	"fmt"
	"log"

	"github.com/ajroetker/go-highway/hwy"
)

// xyChroma is a CIE xy chromaticity coordinate.
type xyChroma struct {
	x, y float64
}

// Primaries per ITU-R BT.709-6 and BT.2020-2. Both standards share the D65
// white point, so no chromatic adaptation is needed between them.
var (
	whiteD65 = xyChroma{0.3127, 0.3290}

	primariesBT709  = [3]xyChroma{{0.640, 0.330}, {0.300, 0.600}, {0.150, 0.060}}
	primariesBT2020 = [3]xyChroma{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}}
)

type mat3 [3][3]float64

func (m mat3) mul(n mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

func (m mat3) eval(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m mat3) inverse() (mat3, bool) {
	c0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c1 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]

	det := m[0][0]*c0 + m[0][1]*c1 + m[0][2]*c2
	if det == 0 {
		return mat3{}, false
	}
	inv := 1 / det

	var r mat3
	r[0][0] = c0 * inv
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv
	r[1][0] = c1 * inv
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv
	r[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv
	r[2][0] = c2 * inv
	r[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv
	return r, true
}

// rgbToXYZMatrix builds the linear RGB->XYZ matrix for a primary set: the
// chromaticity matrix is inverted, evaluated at the white point to obtain
// the per-channel coefficients, and those scale the original columns.
func rgbToXYZMatrix(primaries [3]xyChroma, white xyChroma) mat3 {
	p := mat3{
		{primaries[0].x, primaries[1].x, primaries[2].x},
		{primaries[0].y, primaries[1].y, primaries[2].y},
		{1 - primaries[0].x - primaries[0].y, 1 - primaries[1].x - primaries[1].y, 1 - primaries[2].x - primaries[2].y},
	}
	inv, ok := p.inverse()
	if !ok {
		panic("hdrpix: degenerate primaries")
	}
	coef := inv.eval([3]float64{white.x / white.y, 1, (1 - white.x - white.y) / white.y})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] *= coef[j]
		}
	}
	return p
}

// The two conversion matrices are built once from the primaries. The tone
// curve is linear: the transform operates on linear light only, and alpha is
// copied through untouched.
var bt709To2020, bt2020To709 = func() (fwd, rev [9]float32) {
	m709 := rgbToXYZMatrix(primariesBT709, whiteD65)
	m2020 := rgbToXYZMatrix(primariesBT2020, whiteD65)
	inv709, _ := m709.inverse()
	inv2020, _ := m2020.inverse()
	return flatten(inv2020.mul(m709)), flatten(inv709.mul(m2020))
}()

func flatten(m mat3) (f [9]float32) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			f[i*3+j] = float32(m[i][j])
		}
	}
	return f
}

// conversionMatrix validates the requested pair. Only the two directions
// between BT.709 and BT.2020 exist.
func conversionMatrix(from, to Colorspace) (*[9]float32, error) {
	switch {
	case from == ColorspaceBT709 && to == ColorspaceBT2020:
		return &bt709To2020, nil
	case from == ColorspaceBT2020 && to == ColorspaceBT709:
		return &bt2020To709, nil
	default:
		return nil, fmt.Errorf("%w: %v to %v", ErrUnsupportedColorspace, from, to)
	}
}

func transformChunk(m *[9]float32, pix []float32) {
	for i := 0; i < len(pix); i += 4 {
		r, g, b := pix[i], pix[i+1], pix[i+2]
		pix[i] = m[0]*r + m[1]*g + m[2]*b
		pix[i+1] = m[3]*r + m[4]*g + m[5]*b
		pix[i+2] = m[6]*r + m[7]*g + m[8]*b
	}
}

func transformChunkHalf(m *[9]float32, pix []hwy.Float16) {
	for i := 0; i < len(pix); i += 4 {
		r := hwy.Float16ToFloat32(pix[i])
		g := hwy.Float16ToFloat32(pix[i+1])
		b := hwy.Float16ToFloat32(pix[i+2])
		pix[i] = hwy.Float32ToFloat16(m[0]*r + m[1]*g + m[2]*b)
		pix[i+1] = hwy.Float32ToFloat16(m[3]*r + m[4]*g + m[5]*b)
		pix[i+2] = hwy.Float32ToFloat16(m[6]*r + m[7]*g + m[8]*b)
	}
}

func warnNoopColorspace() {
	log.Printf("hdrpix: requested a no-op colorspace transform")
}
