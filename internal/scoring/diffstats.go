package scoring

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStats summarizes the line-level change between two snapshots.
type DiffStats struct {
	// LinesInserted is the number of lines present only in the
	// refactored snapshot.
	LinesInserted int `json:"lines_inserted" yaml:"lines_inserted"`
	// LinesDeleted is the number of lines present only in the original
	// snapshot.
	LinesDeleted int `json:"lines_deleted" yaml:"lines_deleted"`
}

// Changed reports whether the snapshots differ at all.
func (d DiffStats) Changed() bool {
	return d.LinesInserted > 0 || d.LinesDeleted > 0
}

// CompareLines computes line-level insert/delete counts between two
// snapshots using a line-granular diff.
func CompareLines(originalCode, refactoredCode string) DiffStats {
	dmp := diffmatchpatch.New()

	origChars, refactChars, lineIndex := dmp.DiffLinesToChars(originalCode, refactoredCode)
	diffs := dmp.DiffMain(origChars, refactChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineIndex)

	var stats DiffStats

	for _, diff := range diffs {
		lines := countDiffLines(diff.Text)

		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			stats.LinesInserted += lines
		case diffmatchpatch.DiffDelete:
			stats.LinesDeleted += lines
		case diffmatchpatch.DiffEqual:
		}
	}

	return stats
}

func countDiffLines(text string) int {
	if text == "" {
		return 0
	}

	lines := strings.Count(text, "\n")

	if !strings.HasSuffix(text, "\n") {
		lines++
	}

	return lines
}
