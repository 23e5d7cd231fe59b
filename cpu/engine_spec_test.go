package cpu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/nybble/cpu"
)

var _ = Describe("Cycle state machine", func() {
	var (
		prog *cpu.Program
		regs cpu.Registers
	)

	BeforeEach(func() {
		prog = cpu.MustProgram(0xa, 0x7, 0x9)
		regs = cpu.Registers{}
		regs.Bus = prog.First()
	})

	DescribeTable("idle phases leave every register untouched",
		func(cycle cpu.Cycle) {
			regs = cpu.Registers{Bus: 0x3, Opcode: 0x4, OperandA: 0x5, OperandB: 0x6, Result: 0x17, Cycle: cycle}
			before := regs

			Expect(cpu.Step(&regs, prog)).To(BeFalse())
			Expect(regs).To(Equal(before))
			Expect(prog.Cursor()).To(Equal(0))
		},
		Entry("settled", cpu.CYCLE_SETTLED),
		Entry("idle 2", cpu.CYCLE_IDLE_2),
		Entry("idle 5", cpu.CYCLE_IDLE_5),
		Entry("idle 6", cpu.CYCLE_IDLE_6),
	)

	Describe("A full instruction", func() {
		It("should latch the bus value seen at the start of each fetch phase", func() {
			seen := map[cpu.Cycle]cpu.Nibble{}
			for c := range cpu.Cycle(cpu.CYCLE_COUNT) {
				regs.Cycle = c
				if c.Latches() {
					seen[c] = regs.Bus
				}
				cpu.Step(&regs, prog)
			}

			Expect(regs.Opcode).To(Equal(seen[cpu.CYCLE_FETCH_OPCODE]))
			Expect(regs.OperandA).To(Equal(seen[cpu.CYCLE_FETCH_A]))
			Expect(regs.OperandB).To(Equal(seen[cpu.CYCLE_FETCH_B]))
		})

		It("should set the carry when the sum overflows", func() {
			for c := range cpu.Cycle(cpu.CYCLE_COUNT) {
				regs.Cycle = c
				cpu.Step(&regs, prog)
			}

			Expect(regs.Result.Carry()).To(BeTrue())
			Expect(regs.Result.Value()).To(Equal(cpu.Nibble(0x0)))
		})

		It("should report the program wrap on the last operand fetch", func() {
			var wraps []cpu.Cycle
			for c := range cpu.Cycle(cpu.CYCLE_COUNT) {
				regs.Cycle = c
				if cpu.Step(&regs, prog) {
					wraps = append(wraps, c)
				}
			}

			Expect(wraps).To(Equal([]cpu.Cycle{cpu.CYCLE_FETCH_B}))
			Expect(regs.Bus).To(Equal(prog.First()))
		})
	})

	Describe("Unrecognized opcodes", func() {
		It("should leave the result register unchanged", func() {
			regs = cpu.Registers{Opcode: 0xf, OperandA: 0x1, OperandB: 0x1, Result: 0x12, Cycle: cpu.CYCLE_EXECUTE}

			cpu.Step(&regs, prog)

			Expect(regs.Result).To(Equal(cpu.Result(0x12)))
		})
	})
})
