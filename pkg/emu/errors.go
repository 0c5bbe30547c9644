// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package emu

// Code is a typed result/error code. It mirrors the original emu_result_t
// enum: a flat set of outcomes rather than a wrapped error chain, since the
// pipeline never needs more context than "which of these five things
// happened."
type Code uint8

const (
	// Success is normal completion.
	Success Code = iota
	// Failure is a generic failure with no more specific subtype.
	Failure
	// OutOfBounds means the cursor ran past the end of memory.
	OutOfBounds
	// UnknownOpcode means the tag decoder returned INVALID.
	UnknownOpcode
	// UnimplementedInstruction means a valid tag has no registered handler.
	UnimplementedInstruction
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case OutOfBounds:
		return "out of bounds"
	case UnknownOpcode:
		return "unknown opcode"
	case UnimplementedInstruction:
		return "unimplemented instruction"
	default:
		return "invalid code"
	}
}

// Error satisfies the error interface, so a Code can be returned and
// compared directly with errors.Is against the sentinel values below.
func (c Code) Error() string {
	return c.String()
}

// Sentinel errors, one per non-success Code, for errors.Is-style matching.
var (
	ErrFailure                  = Failure
	ErrOutOfBounds              = OutOfBounds
	ErrUnknownOpcode            = UnknownOpcode
	ErrUnimplementedInstruction = UnimplementedInstruction
)
