package hack

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace logs every executed instruction.
const LevelTrace = slog.LevelDebug - 4

var pointerNames = []string{"SP", "LCL", "ARG", "THIS", "THAT"}

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState writes the registers, segment pointers and the live stack of a
// core as tables.
func PrintState(w io.Writer, c *Core) {
	regTable := table.NewWriter()
	regTable.SetOutputMirror(w)
	regTable.SetTitle(fmt.Sprintf("Hack state after %d cycles", c.state.Cycles))
	regTable.AppendHeader(table.Row{"PC", "A", "D", "SP", "LCL", "ARG", "THIS", "THAT"})

	row := table.Row{c.state.PC, c.state.A, c.state.D}
	for i := range pointerNames {
		row = append(row, c.state.RAM[i])
	}
	regTable.AppendRow(row)
	regTable.Render()

	sp := int(c.state.RAM[0])
	base := sp - 8
	if base < 256 {
		base = 256
	}
	if sp <= base || sp > len(c.state.RAM) {
		return
	}

	stackTable := table.NewWriter()
	stackTable.SetOutputMirror(w)
	stackTable.SetTitle("Stack")
	stackTable.AppendHeader(table.Row{"Addr", "Value"})
	for addr := sp - 1; addr >= base; addr-- {
		stackTable.AppendRow(table.Row{addr, c.state.RAM[addr]})
	}
	stackTable.Render()
}

func LogState(c *Core) {
	slog.Debug("StateCheckpoint",
		"PC", c.state.PC,
		"A", c.state.A,
		"D", c.state.D,
		"SP", c.state.RAM[0],
		"LCL", c.state.RAM[1],
		"ARG", c.state.RAM[2],
		"THIS", c.state.RAM[3],
		"THAT", c.state.RAM[4],
		"Cycles", c.state.Cycles,
		"Halted", c.state.Halted,
	)
}
