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

// Architecture is the dispatch seam between the CLI/debugger front ends and
// a concrete ISA pipeline. Each supported instruction set implements it
// once; C1 (cursor) and the driver shape are conceptually shared, but
// nothing forces a common struct — the interface is the only contract.
type Architecture interface {
	// Name is the short identifier used on the command line (i8086, i386,
	// rv64i).
	Name() string

	// Disassemble decodes program into a textual assembly listing.
	Disassemble(program []byte) (string, error)

	// Emulate decodes and executes program against a fresh CPU state and
	// returns a human-readable summary of the final state.
	Emulate(program []byte) (string, error)
}

var registry = map[string]Architecture{}

// Register adds an architecture to the global registry, keyed by its Name.
// Intended to be called from each architecture package's init().
func Register(a Architecture) {
	registry[a.Name()] = a
}

// Lookup returns the registered architecture with the given name, or false
// if none is registered under that name.
func Lookup(name string) (Architecture, bool) {
	a, ok := registry[name]
	return a, ok
}

// Names returns the names of all registered architectures.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
