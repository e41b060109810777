package api

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveInputs", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should resolve a single file", func() {
		path := writeVM(dir, "Add.vm", "add\n")

		inputs, err := ResolveInputs(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(inputs.Units).To(Equal([]Unit{{Name: "Add", Path: path}}))
		Expect(inputs.Output).To(Equal(filepath.Join(dir, "Add.asm")))
	})

	It("should resolve a directory in name order", func() {
		sub := filepath.Join(dir, "Fib")
		Expect(os.Mkdir(sub, 0o755)).To(Succeed())
		writeVM(sub, "Sys.vm", "")
		writeVM(sub, "Main.vm", "")
		writeVM(sub, "README", "")
		Expect(os.Mkdir(filepath.Join(sub, "nested.vm"), 0o755)).To(Succeed())

		inputs, err := ResolveInputs(sub + string(filepath.Separator))
		Expect(err).NotTo(HaveOccurred())
		Expect(inputs.Units).To(HaveLen(2))
		Expect(inputs.Units[0].Name).To(Equal("Main"))
		Expect(inputs.Units[1].Name).To(Equal("Sys"))
		Expect(inputs.Output).To(Equal(filepath.Join(sub, "Fib.asm")))
	})

	It("should reject a missing path", func() {
		_, err := ResolveInputs(filepath.Join(dir, "missing"))
		Expect(err).To(MatchError(ErrInputNotFound))
	})

	It("should reject a file that is not VM source", func() {
		_, err := ResolveInputs(writeVM(dir, "Prog.asm", ""))
		Expect(err).To(MatchError(ErrNotVMFile))
	})

	It("should reject a directory without VM source", func() {
		_, err := ResolveInputs(dir)
		Expect(err).To(MatchError(ErrNoInputs))
	})
})
