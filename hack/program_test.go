package hack_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hackvm/hack"
)

var _ = Describe("LoadProgram", func() {
	It("should bind labels to ROM addresses", func() {
		prog, err := hack.LoadProgramFromString(`
// comment
@START
0;JMP
(START)
@LOOP
(LOOP)
0;JMP
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Insts).To(HaveLen(4))
		Expect(prog.Labels).To(HaveKeyWithValue("START", 2))
		Expect(prog.Labels).To(HaveKeyWithValue("LOOP", 3))
		Expect(prog.Insts[0].Value).To(Equal(2))
		Expect(prog.Insts[2].Value).To(Equal(3))
	})

	It("should resolve predefined symbols", func() {
		prog, err := hack.LoadProgramFromString("@SP\n@R13\n@THAT\n@KBD\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Insts[0].Value).To(Equal(0))
		Expect(prog.Insts[1].Value).To(Equal(13))
		Expect(prog.Insts[2].Value).To(Equal(4))
		Expect(prog.Insts[3].Value).To(Equal(hack.KeyboardAddr))
	})

	It("should allocate variables from 16 in order of first use", func() {
		prog, err := hack.LoadProgramFromString("@x\n@y\n@x\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Variables).To(Equal(map[string]int{"x": 16, "y": 17}))
		Expect(prog.Insts[2].Value).To(Equal(16))
	})

	It("should reject duplicate labels", func() {
		_, err := hack.LoadProgramFromString("(A)\n@0\n(A)\n")
		Expect(err).To(MatchError(hack.ErrDuplicateLabel))
	})

	It("should reject malformed instructions", func() {
		_, err := hack.LoadProgramFromString("D=Q+1\n")
		Expect(err).To(MatchError(hack.ErrSyntax))

		_, err = hack.LoadProgramFromString("0;JXX\n")
		Expect(err).To(MatchError(hack.ErrSyntax))

		_, err = hack.LoadProgramFromString("@99999\n")
		Expect(err).To(MatchError(hack.ErrSyntax))
	})

	It("should keep label declarations when only parsing", func() {
		insts, err := hack.Parse(stringsReader("(A)\n@A\n0;JMP\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(insts).To(HaveLen(3))
		Expect(insts[0].Kind).To(Equal(hack.LInst))
		Expect(insts[2].Jump).To(Equal("JMP"))
		Expect(insts[2].Line).To(Equal(3))
	})
})
