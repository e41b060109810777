package config_test

import (
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hackvm/codegen"
	"github.com/sarchlab/hackvm/config"
)

var _ = Describe("Config", func() {
	writeFile := func(content string) string {
		path := filepath.Join(GinkgoT().TempDir(), "vmtranslator.yaml")
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	It("should provide valid defaults", func() {
		cfg := config.Default()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.EntryPoint).To(Equal("Sys.init"))
		Expect(cfg.StackBase).To(Equal(256))
		Expect(cfg.Bootstrap).To(BeTrue())
	})

	It("should load a file over the defaults", func() {
		cfg, err := config.Load(writeFile(`
entry_point: Main.main
bootstrap: false
lint: true
log:
  level: trace
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.EntryPoint).To(Equal("Main.main"))
		Expect(cfg.Bootstrap).To(BeFalse())
		Expect(cfg.Lint).To(BeTrue())
		Expect(cfg.StackBase).To(Equal(256))
		Expect(cfg.Log.Format).To(Equal("text"))

		level, err := cfg.Log.SlogLevel()
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(codegen.LevelTrace))
	})

	It("should report a missing file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "none.yaml"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("should report malformed YAML", func() {
		_, err := config.Load(writeFile("entry_point: [unclosed\n"))
		Expect(err).To(HaveOccurred())
		Expect(err).NotTo(MatchError(config.ErrInvalid))
	})

	DescribeTable("should reject invalid values",
		func(mutate func(*config.Config)) {
			cfg := config.Default()
			mutate(&cfg)
			Expect(cfg.Validate()).To(MatchError(config.ErrInvalid))
		},
		Entry("empty entry point", func(c *config.Config) { c.EntryPoint = " " }),
		Entry("zero stack base", func(c *config.Config) { c.StackBase = 0 }),
		Entry("huge stack base", func(c *config.Config) { c.StackBase = 40000 }),
		Entry("unknown level", func(c *config.Config) { c.Log.Level = "loud" }),
		Entry("unknown format", func(c *config.Config) { c.Log.Format = "xml" }),
	)

	It("should map level names", func() {
		level, err := config.LogConfig{Level: "WARN"}.SlogLevel()
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(slog.LevelWarn))
	})
})
