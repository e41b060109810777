// Package verify checks generated Hack assembly for problems the translator
// leaves undetected.
//
// The translator does not reject a label declared twice in one function or
// a goto whose target is never declared; both only misbehave once the
// program runs. RunLint finds them statically from the assembly text:
//
//   - DUPLICATE: a (label) declared more than once. The Hack assembler
//     rejects this.
//   - UNDEFINED: an @symbol used as a jump target that is neither declared
//     nor predefined. The assembler would silently allocate it as a
//     variable and the jump would land at a RAM address.
//
// Issues are warnings. The CLI reports them and only fails in strict mode.
package verify

// IssueType categorizes lint issues
type IssueType string

const (
	IssueDuplicateLabel  IssueType = "DUPLICATE"
	IssueUndefinedTarget IssueType = "UNDEFINED"
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	Symbol  string
	Line    int // Line in the assembly output
	Message string
	Details map[string]interface{}
}
