package usecase

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a per-record failure that did not stop a run.
type DiagnosticKind string

const (
	DiagResolutionFailure  DiagnosticKind = "resolution_failure"
	DiagParseFailure       DiagnosticKind = "parse_failure"
	DiagBatchInsertFailure DiagnosticKind = "batch_insert_failure"
	DiagMissingMatch       DiagnosticKind = "missing_match"
	DiagStoreFailure       DiagnosticKind = "store_failure"
)

// maxDisplayedDiagnostics caps how many individual entries a summary
// prints; the remainder collapses to a count.
const maxDisplayedDiagnostics = 10

// Diagnostic is one skipped or failed record: what kind of failure, the
// record key (a name, URL or batch label) and a short detail.
type Diagnostic struct {
	Kind   DiagnosticKind
	Key    string
	Detail string
}

// Report collects diagnostics across a run. Jobs always finish the work
// they can and report the rest here.
type Report struct {
	items []Diagnostic
}

func (r *Report) Add(kind DiagnosticKind, key, detail string) {
	r.items = append(r.items, Diagnostic{Kind: kind, Key: key, Detail: detail})
}

func (r *Report) Count() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}

func (r *Report) Items() []Diagnostic {
	if r == nil {
		return nil
	}
	return r.items
}

// Summary renders at most maxDisplayedDiagnostics lines plus a trailing
// "... and N more" marker.
func (r *Report) Summary() string {
	if r.Count() == 0 {
		return ""
	}
	var b strings.Builder
	shown := r.items
	if len(shown) > maxDisplayedDiagnostics {
		shown = shown[:maxDisplayedDiagnostics]
	}
	for _, d := range shown {
		fmt.Fprintf(&b, "%s: %s (%s)\n", d.Kind, d.Key, d.Detail)
	}
	if hidden := len(r.items) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "... and %d more\n", hidden)
	}
	return b.String()
}
