package skills

import (
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// ImportExtraction validates an extraction response and merges it into the
// ledger. An empty response is an error (nothing to import); individual
// malformed entries are skipped without failing the rest, and collisions with
// existing records are skipped by the ledger's additive policy. Returns how
// many records were added and how many entries were skipped.
func ImportExtraction(l *Ledger, results []types.ExtractedSkill) (added, skipped int, err error) {
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("extraction returned no skills")
	}
	added = l.ImportUnrated(results)
	return added, len(results) - added, nil
}
