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

package x86

import "testing"

// TestTagOfIsTotal walks every (byte1, byte2) pair and checks that TagOf
// never panics — the tag decoder must be a total function over the full
// opcode space, resolving unrecognized bytes to TagInvalid rather than
// indexing out of range.
func TestTagOfIsTotal(t *testing.T) {
	for b1 := 0; b1 <= 0xFF; b1++ {
		for b2 := 0; b2 <= 0xFF; b2++ {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Fatalf("TagOf(%#02x, %#02x) panicked: %v", b1, b2, r)
					}
				}()
				TagOf(byte(b1), byte(b2))
			}()
		}
	}
}

func TestTagOfConditionalJumpOrder(t *testing.T) {
	cases := []struct {
		byte1 byte
		want  Tag
	}{
		{0x70, TagJO}, {0x71, TagJNO}, {0x74, TagJE}, {0x75, TagJNE},
		{0x7C, TagJL}, {0x7D, TagJNL}, {0x7E, TagJLE}, {0x7F, TagJNLE},
	}
	for _, c := range cases {
		if got := TagOf(c.byte1, 0); got != c.want {
			t.Errorf("TagOf(%#02x, _) = %v, want %v", c.byte1, got, c.want)
		}
	}
}

func TestTagOfGroup1SubopcodeOrder(t *testing.T) {
	cases := []struct {
		subop int
		want  Tag
	}{
		{0, TagAddImmediate}, {1, TagOrImmediate}, {2, TagAdcImmediate},
		{3, TagSbbImmediate}, {4, TagAndImmediate}, {5, TagSubImmediate},
		{6, TagXorImmediate}, {7, TagCmpImmediate},
	}
	for _, c := range cases {
		byte2 := byte(c.subop << 3)
		if got := TagOf(0x83, byte2); got != c.want {
			t.Errorf("TagOf(0x83, subop=%d) = %v, want %v", c.subop, got, c.want)
		}
	}
}

func TestTagOfGroupFFDistinguishesPushFromRegisterPush(t *testing.T) {
	// subop 6 of the group 0xFF family is the ModR/M-encoded PUSH, distinct
	// from the compact 0x50-0x57 register push.
	byte2 := byte(6 << 3)
	if got := TagOf(0xFF, byte2); got != TagPush {
		t.Fatalf("TagOf(0xFF, subop=6) = %v, want TagPush", got)
	}
	if got := TagOf(0x53, 0); got != TagPushRegister {
		t.Fatalf("TagOf(0x53, _) = %v, want TagPushRegister", got)
	}
}

func TestTagOfGroupFEOnlyIncDec(t *testing.T) {
	if got := TagOf(0xFE, byte(0<<3)); got != TagInc {
		t.Fatalf("TagOf(0xFE, subop=0) = %v, want TagInc", got)
	}
	if got := TagOf(0xFE, byte(1<<3)); got != TagDec {
		t.Fatalf("TagOf(0xFE, subop=1) = %v, want TagDec", got)
	}
	if got := TagOf(0xFE, byte(2<<3)); got != TagInvalid {
		t.Fatalf("TagOf(0xFE, subop=2) = %v, want TagInvalid", got)
	}
}

func TestTagOfUnknownOpcodeIsInvalid(t *testing.T) {
	if got := TagOf(0x0F, 0); got != TagInvalid {
		t.Fatalf("TagOf(0x0F, _) = %v, want TagInvalid", got)
	}
}
