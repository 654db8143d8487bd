package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// PadLoop generates a slow, layered sine pad for the menu.
type PadLoop struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewPadLoop creates the menu pad generator.
func NewPadLoop(sr beep.SampleRate) *PadLoop {
	return &PadLoop{
		sr:      sr,
		samples: sr.N(time.Second * 8), // 8 second swell cycle
	}
}

func (g *PadLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)

		// Two detuned sines plus a fifth, swelling over the cycle.
		amplitude := 0.08 * (0.4 + 0.6*math.Sin(cyclePos*math.Pi))
		sample := amplitude * math.Sin(2*math.Pi*110*t)
		sample += amplitude * 0.8 * math.Sin(2*math.Pi*110.5*t)
		sample += amplitude * 0.5 * math.Sin(2*math.Pi*165*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PadLoop) Err() error {
	return nil
}

// PulseLoop generates a rhythmic kick-and-bass loop for gameplay.
type PulseLoop struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewPulseLoop creates the gameplay rhythm generator.
func NewPulseLoop(sr beep.SampleRate) *PulseLoop {
	return &PulseLoop{
		sr:      sr,
		samples: sr.N(time.Millisecond * 500), // 120 BPM
	}
}

func (g *PulseLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		// Kick at the top of each beat with a downward pitch sweep.
		kick := 0.0
		kickLen := g.sr.N(time.Millisecond * 90)
		if beatPos < kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(kickLen)
			kickFreq := 55 * (1 + 2*kickEnv)
			kick = 0.35 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		bass := 0.12 * math.Sin(2*math.Pi*82.5*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PulseLoop) Err() error {
	return nil
}

// ShotBurst generates a gunshot: a noise burst with a fast exponential
// decay over a low thump.
type ShotBurst struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewShotBurst creates a gunshot generator.
func NewShotBurst(sr beep.SampleRate) *ShotBurst {
	return &ShotBurst{
		sr:   sr,
		seed: 0x53484f54, // fixed seed, same bang every time
	}
}

func (g *ShotBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 18)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		thump := 0.4 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.5*noise + thump)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ShotBurst) Err() error {
	return nil
}
