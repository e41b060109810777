package hack

import (
	"github.com/sarchlab/akita/v4/sim"
)

// DefaultMaxCycles bounds a run that never reaches its halt loop.
const DefaultMaxCycles = 1_000_000

// Builder can create new cores.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	maxCycles int
	ramSize   int
}

// NewBuilder returns a builder with the Hack defaults.
func NewBuilder() Builder {
	return Builder{
		freq:      1 * sim.GHz,
		maxCycles: DefaultMaxCycles,
		ramSize:   RAMSize,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithMaxCycles sets how many instructions may run before the core gives up.
// Zero means no limit.
func (b Builder) WithMaxCycles(n int) Builder {
	b.maxCycles = n
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.ramSize == 0 {
		b.ramSize = RAMSize
	}

	c := &Core{maxCycles: b.maxCycles}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.state = coreState{
		RAM: make([]int16, b.ramSize),
	}

	return c
}

// Run loads prog into a fresh core, applies the RAM presets and runs it on a
// serial engine until it halts.
func Run(prog Program, presets map[int]int16, maxCycles int) (*Core, error) {
	engine := sim.NewSerialEngine()

	c := NewBuilder().
		WithEngine(engine).
		WithMaxCycles(maxCycles).
		Build("Hack.Core")

	c.MapProgram(prog)
	for addr, v := range presets {
		c.SetRAM(addr, v)
	}

	engine.Schedule(sim.MakeTickEvent(c, 0))

	if err := engine.Run(); err != nil {
		return c, err
	}

	if c.Err() != nil {
		return c, c.Err()
	}

	LogState(c)

	return c, nil
}
