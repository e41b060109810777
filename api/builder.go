package api

import (
	"io"

	"github.com/sarchlab/hackvm/codegen"
	"github.com/sarchlab/hackvm/config"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	cfg     *config.Config
	factory TranslatorFactory
}

// WithConfig sets the run configuration.
func (b DriverBuilder) WithConfig(cfg config.Config) DriverBuilder {
	b.cfg = &cfg
	return b
}

// WithTranslatorFactory replaces the code generation engine.
func (b DriverBuilder) WithTranslatorFactory(f TranslatorFactory) DriverBuilder {
	b.factory = f
	return b
}

// Build create a driver.
func (b DriverBuilder) Build() Driver {
	cfg := config.Default()
	if b.cfg != nil {
		cfg = *b.cfg
	}

	d := &driverImpl{
		cfg:     cfg,
		factory: b.factory,
	}

	if d.factory == nil {
		d.factory = func(w io.Writer) Translator {
			return codegen.EngineBuilder{}.
				WithStackBase(cfg.StackBase).
				WithEntryPoint(cfg.EntryPoint).
				Build(w)
		}
	}

	return d
}
