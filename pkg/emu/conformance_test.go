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

package emu_test

import (
	"errors"
	"testing"

	"github.com/master-g/emux86/pkg/emu"
	_ "github.com/master-g/emux86/pkg/arm64"
	_ "github.com/master-g/emux86/pkg/rv64i"
	_ "github.com/master-g/emux86/pkg/x86"
)

// TestCLIArchitectureNamesAreRegistered pins the literal architecture names
// the command line contracts on: every one of them must resolve through
// the shared registry regardless of which package it actually lives in.
func TestCLIArchitectureNamesAreRegistered(t *testing.T) {
	for _, name := range []string{"i8086", "i386", "rv64i"} {
		if _, ok := emu.Lookup(name); !ok {
			t.Errorf("no architecture registered under %q", name)
		}
	}
}

// TestUnimplementedInstructionNeverPanics drives every registered
// architecture's Disassemble and Emulate over a byte stream no stub
// recognizes, asserting a clean ErrUnimplementedInstruction-class failure
// rather than a panic.
func TestUnimplementedInstructionNeverPanics(t *testing.T) {
	program := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	for _, name := range emu.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			arch, ok := emu.Lookup(name)
			if !ok {
				t.Fatalf("Lookup(%q) failed after Names() returned it", name)
			}

			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s.Disassemble panicked: %v", name, r)
					}
				}()
				if _, err := arch.Disassemble(program); err != nil && !isKnownFailure(err) {
					t.Errorf("%s.Disassemble returned an unexpected error: %v", name, err)
				}
			}()

			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s.Emulate panicked: %v", name, r)
					}
				}()
				if _, err := arch.Emulate(program); err != nil && !isKnownFailure(err) {
					t.Errorf("%s.Emulate returned an unexpected error: %v", name, err)
				}
			}()
		})
	}
}

func isKnownFailure(err error) bool {
	return errors.Is(err, emu.ErrUnimplementedInstruction) || errors.Is(err, emu.ErrUnknownOpcode)
}
