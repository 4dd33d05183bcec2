package usecase

import (
	"fmt"
	"strings"
	"testing"
)

func TestReportSummaryCapsDisplayedEntries(t *testing.T) {
	t.Parallel()

	report := &Report{}
	for i := 0; i < 13; i++ {
		report.Add(DiagResolutionFailure, fmt.Sprintf("record-%02d", i), "unknown")
	}

	out := report.Summary()
	if got := strings.Count(out, "record-"); got != 10 {
		t.Fatalf("expected 10 displayed entries, got %d", got)
	}
	if !strings.Contains(out, "... and 3 more") {
		t.Fatalf("missing overflow marker in %q", out)
	}
	if report.Count() != 13 {
		t.Fatalf("count must cover all entries, got %d", report.Count())
	}
}

func TestReportSummaryEmpty(t *testing.T) {
	t.Parallel()

	var report Report
	if report.Summary() != "" {
		t.Fatal("empty report must render empty summary")
	}
}
