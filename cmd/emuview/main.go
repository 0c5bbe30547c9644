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

// Command emuview is an interactive single-step debugger for the i8086
// pipeline: registers and flags, a scrolling disassembly with the current
// IP highlighted, and two RAM hex-dump pages, driven one instruction at a
// time from the keyboard.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/master-g/emux86/pkg/x86"
)

var (
	machine       *x86.Emulator
	program       []byte
	listing       []x86.ListingLine
	paragraphCPU  *widgets.Paragraph
	paragraphCode *widgets.Paragraph
	paragraphRam0 *widgets.Paragraph
	paragraphRam1 *widgets.Paragraph
	paragraphTips *widgets.Paragraph
)

func renderCpu(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	flags := []uint16{
		x86.FlagOF,
		x86.FlagDF,
		x86.FlagIF,
		x86.FlagTF,
		x86.FlagSF,
		x86.FlagZF,
		x86.FlagAF,
		x86.FlagPF,
		x86.FlagCF,
	}
	symbols := []rune{'O', 'D', 'I', 'T', 'S', 'Z', 'A', 'P', 'C'}

	sb.WriteString("FLAGS: ")
	for i, f := range flags {
		sb.WriteRune('[')
		sb.WriteRune(symbols[i])
		sb.WriteRune(']')
		sb.WriteString("(fg:")
		if machine.Regs.Test(f) {
			sb.WriteString("green")
		} else {
			sb.WriteString("red")
		}
		sb.WriteString(") ")
	}
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("IP: $%04X  instructions: %d", machine.Regs.IP, machine.InstructionCount()))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("AX: $%04X  BX: $%04X", machine.Regs.Word(x86.RegAX), machine.Regs.Word(x86.RegBX)))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("CX: $%04X  DX: $%04X", machine.Regs.Word(x86.RegCX), machine.Regs.Word(x86.RegDX)))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("SP: $%04X  BP: $%04X", machine.Regs.Word(x86.RegSP), machine.Regs.Word(x86.RegBP)))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("SI: $%04X  DI: $%04X", machine.Regs.Word(x86.RegSI), machine.Regs.Word(x86.RegDI)))

	p.Text = sb.String()
}

func renderRam(p *widgets.Paragraph, addr int, numRow, numCol int) {
	curAddr := addr
	sb := &strings.Builder{}
	for row := 0; row < numRow; row++ {
		sb.WriteString(fmt.Sprintf("$%04X:", curAddr))
		for col := 0; col < numCol; col++ {
			sb.WriteRune(' ')
			sb.WriteString(fmt.Sprintf("%02X", machine.Mem.ReadByte(curAddr)))
			curAddr++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderCode(p *widgets.Paragraph) {
	sb := strings.Builder{}
	ip := int(machine.Regs.IP)
	for _, line := range listing {
		text := fmt.Sprintf("$%04X: %s", line.Addr, line.Text)
		if line.Addr == ip {
			sb.WriteString(fmt.Sprintf("[%s](fg:cyan)", text))
		} else {
			sb.WriteString(text)
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderTips(p *widgets.Paragraph) {
	p.Text = "SPACE = Step Instruction    R = Reset    Q = Quit"
}

func draw() {
	renderRam(paragraphRam0, 0x0000, 16, 16)
	renderRam(paragraphRam1, x86.MemorySize/2, 16, 16)
	renderCpu(paragraphCPU)
	renderCode(paragraphCode)
	renderTips(paragraphTips)

	ui.Render(paragraphRam0, paragraphRam1, paragraphCPU, paragraphCode, paragraphTips)
}

func loadMachine(path string) {
	var err error
	program, err = os.ReadFile(path)
	if err != nil {
		log.Fatalf("could not read program: %v", err)
	}

	machine = x86.NewEmulator()
	listing = x86.Listing(program)
	machine.Load(program, x86.ModeEmulate)
}

func initLayout() {
	paragraphRam0 = widgets.NewParagraph()
	paragraphRam0.Title = "RAM Page 0x0000"
	paragraphRam0.SetRect(0, 0, 56, 18)

	paragraphRam1 = widgets.NewParagraph()
	paragraphRam1.Title = "RAM Page 0x8000"
	paragraphRam1.SetRect(0, 18, 56, 36)

	paragraphCPU = widgets.NewParagraph()
	paragraphCPU.Title = "CPU"
	paragraphCPU.SetRect(56, 0, 56+34, 8)

	paragraphCode = widgets.NewParagraph()
	paragraphCode.Title = "Disassembly"
	paragraphCode.SetRect(56, 8, 56+34, 8+28)

	paragraphTips = widgets.NewParagraph()
	paragraphTips.Title = "Tips"
	paragraphTips.SetRect(0, 36, 56+34, 39)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: emuview <file>")
		os.Exit(1)
	}

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	loadMachine(os.Args[1])

	draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "Q", "<C-c>":
			return
		case "<Space>":
			if _, err := machine.Step(); err != nil {
				paragraphTips.Text = err.Error()
			}
		case "r", "R":
			machine.Load(program, x86.ModeEmulate)
		}
		draw()
	}
}
