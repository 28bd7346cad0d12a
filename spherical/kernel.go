package spherical

import "math"

// irradianceKernel holds the clamped-cosine convolution weights Â_l
// (Ramamoorthi & Hanrahan, eq. 8), indexed by band.
var irradianceKernel = [MaxLevel + 1]float64{
	math.Pi,
	math.Pi * 2 / 3,
	math.Pi / 4,
	0,
	-math.Pi / 24,
}

// bandKernelSlot maps a band to the kernel entry Evaluate applies to it.
// Band 3 reads the band-2 entry.
var bandKernelSlot = [MaxLevel + 1]int{0, 1, 2, 2, 4}

// KernelWeight returns the weight Evaluate multiplies band's terms by.
// Panics if band is outside [0, 4].
func KernelWeight(band int) float64 {
	if !validLevels(band) {
		panic("spherical: KernelWeight: band outside [0, 4]")
	}

	return irradianceKernel[bandKernelSlot[band]]
}
