package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// VerificationReport summarises the lint result of one output file.
type VerificationReport struct {
	Output          string
	Issues          []Issue
	DuplicateIssues []Issue
	UndefinedIssues []Issue
}

// GenerateReport categorizes issues for the output file at path.
func GenerateReport(output string, issues []Issue) *VerificationReport {
	report := &VerificationReport{
		Output: output,
		Issues: issues,
	}

	for _, issue := range issues {
		if issue.Type == IssueDuplicateLabel {
			report.DuplicateIssues = append(report.DuplicateIssues, issue)
		} else {
			report.UndefinedIssues = append(report.UndefinedIssues, issue)
		}
	}

	return report
}

// OK reports whether no issue was found.
func (r *VerificationReport) OK() bool {
	return len(r.Issues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "LINT REPORT: %s\n", r.Output)
	fmt.Fprintln(w, separator)

	if r.OK() {
		fmt.Fprintln(w, "No lint issues found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Line", "Type", "Symbol", "Message"})
	for _, issue := range r.Issues {
		t.AppendRow(table.Row{issue.Line, issue.Type, issue.Symbol, issue.Message})
	}
	t.AppendFooter(table.Row{"", "Total", len(r.Issues),
		fmt.Sprintf("%d %s, %d %s",
			len(r.DuplicateIssues), IssueDuplicateLabel,
			len(r.UndefinedIssues), IssueUndefinedTarget)})
	t.Render()
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
