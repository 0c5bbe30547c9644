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

package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/master-g/emux86/pkg/emu"
	_ "github.com/master-g/emux86/pkg/arm64"
	_ "github.com/master-g/emux86/pkg/rv64i"
	_ "github.com/master-g/emux86/pkg/x86"
)

// readProgram slurps the whole file into a raw byte buffer, the one input
// form the core pipeline accepts (§6.2).
func readProgram(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func runDisassemble(archName, path string) error {
	arch, ok := emu.Lookup(archName)
	if !ok {
		return fmt.Errorf("unknown architecture %q", archName)
	}
	program, err := readProgram(path)
	if err != nil {
		return err
	}
	text, err := arch.Disassemble(program)
	fmt.Print(text)
	return err
}

func runEmulate(archName, path string) error {
	arch, ok := emu.Lookup(archName)
	if !ok {
		return fmt.Errorf("unknown architecture %q", archName)
	}
	program, err := readProgram(path)
	if err != nil {
		return err
	}
	summary, err := arch.Emulate(program)
	fmt.Print(summary)
	return err
}

func main() {
	app := &cli.App{
		Name:    "emux86",
		Usage:   "multi-architecture instruction-set emulator and disassembler",
		Version: "v0.1.0",
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "disassemble a raw i8086 byte stream (shorthand for disassemble --arch=i8086)",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("decode requires exactly one file argument", 1)
					}
					if err := runDisassemble("i8086", c.Args().Get(0)); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return nil
				},
			},
			{
				Name:      "disassemble",
				Usage:     "disassemble a raw byte stream for the given architecture",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "arch",
						Usage: "target architecture (i8086, i386, rv64i)",
						Value: "i8086",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("disassemble requires exactly one file argument", 1)
					}
					if err := runDisassemble(c.String("arch"), c.Args().Get(0)); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return nil
				},
			},
			{
				Name:      "emulate",
				Usage:     "execute a raw byte stream for the given architecture and report final state",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "arch",
						Usage: "target architecture (i8086, i386, rv64i)",
						Value: "i8086",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("emulate requires exactly one file argument", 1)
					}
					if err := runEmulate(c.String("arch"), c.Args().Get(0)); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
