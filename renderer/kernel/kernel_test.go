// This file is part of kvist.
//
// kvist is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kvist is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kvist.  If not, see <https://www.gnu.org/licenses/>.

package kernel_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/kvisten/kvist/digest"
	"github.com/kvisten/kvist/renderer/kernel"
	"github.com/kvisten/kvist/test"
)

func TestCorners(t *testing.T) {
	// every corner is one of the four clip-space extremes
	for _, c := range kernel.Corners {
		test.ExpectSuccess(t, c[0] == -1.0 || c[0] == 1.0)
		test.ExpectSuccess(t, c[1] == -1.0 || c[1] == 1.0)
	}

	// and all four corners are distinct
	seen := make(map[[2]float32]bool)
	for _, c := range kernel.Corners {
		seen[c] = true
	}
	test.ExpectEquality(t, len(seen), 4)

	// fan order. adjacent corners share an edge
	for i := range kernel.Corners {
		c := kernel.Corners[i]
		n := kernel.Corners[(i+1)%len(kernel.Corners)]
		test.ExpectSuccess(t, c[0] == n[0] || c[1] == n[1])
	}
}

func TestUVDerivation(t *testing.T) {
	for _, c := range kernel.Corners {
		uv := kernel.UV(c)
		test.ExpectEquality(t, uv[0], c[0]*0.5+0.5)
		test.ExpectEquality(t, uv[1], c[1]*0.5+0.5)

		// corners map to the extremes of the UV square
		test.ExpectSuccess(t, uv[0] == 0.0 || uv[0] == 1.0)
		test.ExpectSuccess(t, uv[1] == 0.0 || uv[1] == 1.0)
	}
}

func TestWideWeights(t *testing.T) {
	var sum float32
	for _, w := range kernel.WideWeights {
		sum += w
	}
	test.ExpectEquality(t, sum, kernel.WideNorm)
}

func TestSoftWeights(t *testing.T) {
	var sum float32
	nonZero := 0
	for _, w := range kernel.SoftWeights {
		sum += w
		if w != 0 {
			nonZero++
		}
	}

	// centre plus the four orthogonal neighbours
	test.ExpectEquality(t, nonZero, 5)
	test.ExpectEquality(t, sum, kernel.SoftNorm)

	// the diagonal taps are the ones left out
	for i := 5; i < len(kernel.SoftWeights); i++ {
		test.ExpectEquality(t, kernel.SoftWeights[i], 0.0)
		test.ExpectSuccess(t, kernel.Offsets[i][0] != 0 && kernel.Offsets[i][1] != 0)
	}
}

// a normalized kernel leaves a uniform image untouched, whatever the pixel
// size.
func TestBlurWideUniformImage(t *testing.T) {
	src := kernel.NewImage(8, 8)
	for y := range 8 {
		for x := range 8 {
			src.SetRGBA(x, y, 0.5, 0.25, 0.75, 1.0)
		}
	}

	for _, ps := range [][2]float32{{1.0 / 8, 1.0 / 8}, {0.5, 0.5}, {0.001, 0.001}} {
		dst := kernel.BlurWide(src, ps)
		for y := range 8 {
			for x := range 8 {
				r, g, b, a := dst.RGBA(x, y)
				test.ExpectApproximate(t, r, 0.5, 0.0001)
				test.ExpectApproximate(t, g, 0.25, 0.0001)
				test.ExpectApproximate(t, b, 0.75, 0.0001)
				test.ExpectEquality(t, a, 1.0)
			}
		}
	}
}

// a single bright pixel spreads to its neighbours in proportion to the
// weights.
func TestBlurWidePointSpread(t *testing.T) {
	src := kernel.NewImage(9, 9)
	src.SetRGBA(4, 4, 16.0, 0, 0, 1.0)

	// a quarter of this pixel size is exactly one pixel, so every tap lands
	// on a distinct pixel centre
	ps := [2]float32{4.0 / 9, 4.0 / 9}
	dst := kernel.BlurWide(src, ps)

	r, _, _, _ := dst.RGBA(4, 4)
	test.ExpectApproximate(t, r, 4.0, 0.0001)

	r, _, _, _ = dst.RGBA(5, 4)
	test.ExpectApproximate(t, r, 2.0, 0.0001)

	r, _, _, _ = dst.RGBA(5, 5)
	test.ExpectApproximate(t, r, 1.0, 0.0001)

	// outside the kernel's reach
	r, _, _, _ = dst.RGBA(6, 4)
	test.ExpectEquality(t, r, 0.0)
}

func TestBlurSoftAttenuation(t *testing.T) {
	src := kernel.NewImage(4, 4)
	for y := range 4 {
		for x := range 4 {
			src.SetRGBA(x, y, 1.0, 1.0, 1.0, 1.0)
		}
	}

	dst := kernel.BlurSoft(src, [2]float32{0.001, 0.001})

	// the fade increases with v. rows at a v of 0.75 and above saturate
	for y := range 4 {
		v := (float32(y) + 0.5) / 4
		r, _, _, _ := dst.RGBA(0, y)
		test.ExpectApproximate(t, r, kernel.SoftAttenuation(v), 0.0001)
	}

	// higher rows are never dimmer than lower rows
	prev, _, _, _ := dst.RGBA(0, 0)
	for y := 1; y < 4; y++ {
		r, _, _, _ := dst.RGBA(0, y)
		test.ExpectSuccess(t, r >= prev)
		prev = r
	}
}

func TestComposite(t *testing.T) {
	col := kernel.NewImage(2, 2)
	white := kernel.NewImage(2, 2)

	col.SetRGBA(0, 0, 0.25, 0.5, 0.75, 0.1)
	white.SetRGBA(0, 0, 0.5, 0.25, 0.5, 0.2)

	// sums above 1.0 are not clipped
	col.SetRGBA(1, 1, 0.9, 0.0, 0.0, 0.0)
	white.SetRGBA(1, 1, 0.9, 0.0, 0.0, 0.0)

	dst := kernel.Composite(col, white)

	r, g, b, a := dst.RGBA(0, 0)
	test.ExpectApproximate(t, r, 0.75, 0.0001)
	test.ExpectApproximate(t, g, 0.75, 0.0001)
	test.ExpectApproximate(t, b, 1.25, 0.0001)
	test.ExpectEquality(t, a, 1.0)

	r, _, _, a = dst.RGBA(1, 1)
	test.ExpectApproximate(t, r, 1.8, 0.0001)
	test.ExpectEquality(t, a, 1.0)
}

func imageDigest(t *testing.T, images ...*kernel.Image) string {
	t.Helper()

	var frame digest.Frame
	for _, img := range images {
		b := make([]byte, len(img.Pix)*4)
		for i, p := range img.Pix {
			binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(p))
		}
		frame.Add(b)
	}
	return frame.Hash()
}

// the full post chain is deterministic. running it twice over the same
// scene produces identical frame digests.
func TestPostChainDigest(t *testing.T) {
	scene := kernel.NewImage(16, 16)
	for y := range 16 {
		for x := range 16 {
			scene.SetRGBA(x, y, float32(x)/16, float32(y)/16, 0.5, 1.0)
		}
	}
	ps := [2]float32{1.0 / 16, 1.0 / 16}

	run := func() *kernel.Image {
		wide := kernel.BlurWide(scene, ps)
		soft := kernel.BlurSoft(wide, ps)
		return kernel.Composite(scene, soft)
	}

	a := run()
	b := run()
	test.ExpectEquality(t, imageDigest(t, a), imageDigest(t, b))

	// and a different scene produces a different digest
	scene.SetRGBA(8, 8, 1.0, 1.0, 1.0, 1.0)
	c := run()
	test.ExpectInequality(t, imageDigest(t, a), imageDigest(t, c))
}
