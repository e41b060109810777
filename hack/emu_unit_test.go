package hack

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstEmulator", func() {
	var (
		ie instEmulator
		s  coreState
	)

	run := func(text string) error {
		inst, err := ParseInst(text)
		Expect(err).NotTo(HaveOccurred())
		return ie.RunInst(inst, &s)
	}

	BeforeEach(func() {
		ie = instEmulator{}
		s = coreState{
			RAM: make([]int16, 64),
		}
	})

	Context("A-instructions", func() {
		It("should load the constant and advance", func() {
			Expect(run("@17")).To(Succeed())
			Expect(s.A).To(Equal(int16(17)))
			Expect(s.PC).To(Equal(1))
		})
	})

	Context("Computation", func() {
		It("should add D and M into M", func() {
			s.A = 5
			s.D = 3
			s.RAM[5] = 4
			Expect(run("M=D+M")).To(Succeed())
			Expect(s.RAM[5]).To(Equal(int16(7)))
		})

		It("should subtract D from M", func() {
			s.A = 5
			s.D = 3
			s.RAM[5] = 4
			Expect(run("M=M-D")).To(Succeed())
			Expect(s.RAM[5]).To(Equal(int16(1)))
		})

		It("should wrap around at 16 bits", func() {
			s.D = 32767
			Expect(run("D=D+1")).To(Succeed())
			Expect(s.D).To(Equal(int16(-32768)))
		})

		It("should write A and M from the old A", func() {
			s.A = 2
			s.RAM[2] = 10
			Expect(run("AM=M-1")).To(Succeed())
			Expect(s.RAM[2]).To(Equal(int16(9)))
			Expect(s.A).To(Equal(int16(9)))
		})

		It("should accept commuted operands", func() {
			s.A = 6
			s.D = 1
			Expect(run("D=A+D")).To(Succeed())
			Expect(s.D).To(Equal(int16(7)))
		})

		It("should negate and complement", func() {
			s.D = 5
			Expect(run("D=!D")).To(Succeed())
			Expect(s.D).To(Equal(int16(-6)))
			Expect(run("D=-D")).To(Succeed())
			Expect(s.D).To(Equal(int16(6)))
		})

		It("should fault on out-of-range memory", func() {
			s.A = -1
			Expect(run("D=M")).To(MatchError(ErrAddressRange))
		})
	})

	Context("Jumps", func() {
		It("should jump to A when the condition holds", func() {
			s.PC = 3
			s.A = 10
			s.D = 1
			Expect(run("D;JGT")).To(Succeed())
			Expect(s.PC).To(Equal(10))
		})

		It("should fall through when the condition fails", func() {
			s.PC = 3
			s.A = 10
			s.D = 0
			Expect(run("D;JNE")).To(Succeed())
			Expect(s.PC).To(Equal(4))
		})

		It("should detect the halt loop", func() {
			prog, err := LoadProgramFromString("(END)\n@END\n0;JMP\n")
			Expect(err).NotTo(HaveOccurred())
			s.Code = prog

			Expect(ie.RunInst(prog.Insts[0], &s)).To(Succeed())
			Expect(ie.RunInst(prog.Insts[1], &s)).To(Succeed())
			Expect(s.Halted).To(BeTrue())
			Expect(s.PC).To(Equal(0))
		})
	})
})
