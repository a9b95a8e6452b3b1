package mmio

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// ErrClock is returned when no PLLSAI setting can produce a pixel clock.
var ErrClock = errors.New("mmio: pixel clock out of range")

// PLLSAI limits (RM0385 5.3.24).
const (
	minN   = 50
	maxN   = 432
	minR   = 2
	maxR   = 7
	minVCO = 100 * physic.MegaHertz
	maxVCO = 432 * physic.MegaHertz
)

// PLLSAI is a PLLSAI setting that derives the LCD pixel clock from the PLL
// input clock: input * N / R / DIVR.
type PLLSAI struct {
	N    int
	R    int
	DIVR int
}

// Frequency is the pixel clock this setting produces.
func (p PLLSAI) Frequency(input physic.Frequency) physic.Frequency {
	if p.R == 0 || p.DIVR == 0 {
		return 0
	}
	return input * physic.Frequency(p.N) / physic.Frequency(p.R*p.DIVR)
}

func (p PLLSAI) String() string {
	return fmt.Sprintf("PLLSAI N=%d R=%d DIVR=%d", p.N, p.R, p.DIVR)
}

// divr is the DCKCFGR1 PLLSAIDIVR field value.
func (p PLLSAI) divr() uint32 {
	switch p.DIVR {
	case 4:
		return 1
	case 8:
		return 2
	case 16:
		return 3
	default:
		return 0
	}
}

// FindPLLSAI returns the setting closest to target.
func FindPLLSAI(input, target physic.Frequency) (PLLSAI, error) {
	if input <= 0 || target <= 0 {
		return PLLSAI{}, ErrClock
	}

	var (
		best     PLLSAI
		bestDiff = physic.Frequency(-1)
	)
	for _, divr := range []int{2, 4, 8, 16} {
		for r := minR; r <= maxR; r++ {
			div := physic.Frequency(r * divr)
			n := int((target*div + input/2) / input)
			if n < minN || n > maxN {
				continue
			}
			if vco := input * physic.Frequency(n); vco < minVCO || vco > maxVCO {
				continue
			}
			p := PLLSAI{N: n, R: r, DIVR: divr}
			diff := p.Frequency(input) - target
			if diff < 0 {
				diff = -diff
			}
			if bestDiff < 0 || diff < bestDiff {
				best, bestDiff = p, diff
			}
		}
	}
	if bestDiff < 0 {
		return PLLSAI{}, fmt.Errorf("%w: %s from %s", ErrClock, target, input)
	}
	return best, nil
}
