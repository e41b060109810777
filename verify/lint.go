package verify

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/sarchlab/hackvm/hack"
)

// LintAssembly parses assembly text and runs RunLint on it.
func LintAssembly(r io.Reader) ([]Issue, error) {
	insts, err := hack.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse assembly: %w", err)
	}

	return RunLint(insts), nil
}

// RunLint returns the issues found in insts, ordered by line.
func RunLint(insts []hack.Inst) []Issue {
	var issues []Issue

	declared := make(map[string]int) // label → first declaring line
	for _, inst := range insts {
		if inst.Kind != hack.LInst {
			continue
		}

		if first, ok := declared[inst.Symbol]; ok {
			issues = append(issues, Issue{
				Type:   IssueDuplicateLabel,
				Symbol: inst.Symbol,
				Line:   inst.Line,
				Message: fmt.Sprintf("label %s declared again (first at line %d)",
					inst.Symbol, first),
				Details: map[string]interface{}{"first": first},
			})
			continue
		}

		declared[inst.Symbol] = inst.Line
	}

	for i, inst := range insts {
		if inst.Kind != hack.AInst || !isJumpTarget(insts, i) {
			continue
		}

		sym := inst.Symbol
		if _, err := strconv.Atoi(sym); err == nil {
			continue
		}
		if _, ok := declared[sym]; ok {
			continue
		}
		if _, ok := hack.PredefinedSymbols[sym]; ok {
			continue
		}

		issues = append(issues, Issue{
			Type:    IssueUndefinedTarget,
			Symbol:  sym,
			Line:    inst.Line,
			Message: fmt.Sprintf("jump to undeclared label %s", sym),
			Details: map[string]interface{}{"jump": insts[i+1].Jump},
		})
	}

	sort.SliceStable(issues, func(a, b int) bool {
		return issues[a].Line < issues[b].Line
	})

	return issues
}

// isJumpTarget reports whether the instruction after i jumps.
func isJumpTarget(insts []hack.Inst, i int) bool {
	if i+1 >= len(insts) {
		return false
	}

	next := insts[i+1]

	return next.Kind == hack.CInst && next.Jump != ""
}
