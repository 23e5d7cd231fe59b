package cpu

// Compute performs the ALU operation on the two operands.
//
// The real hardware computes every operation in parallel and multiplexes
// the one selected by the opcode; here only the selected one is computed.
// ADD is computed in 5 bits so the carry-out lands in bit 4. OR, AND and
// XOR never set the carry.
//
// If the opcode is not recognized, ok is false and result is zero.
func Compute(op AluOp, a, b Nibble) (result Result, ok bool) {
	a = MakeNibble(uint(a))
	b = MakeNibble(uint(b))

	ok = true
	switch op {
	case ALU_OP_OR:
		result = Result(a | b)
	case ALU_OP_AND:
		result = Result(a & b)
	case ALU_OP_XOR:
		result = Result(a ^ b)
	case ALU_OP_ADD:
		result = MakeResult(uint(a) + uint(b))
	default:
		ok = false
	}

	return
}
