package skills

import (
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ToWirePayload serializes the ledger into the batch-save wire format.
// Provenance is a client-only concern and is dropped; the backend receives
// plain name/rating pairs grouped by category.
func (l *Ledger) ToWirePayload() types.BatchSkillsByCategory {
	snap := l.Snapshot()
	return types.BatchSkillsByCategory{
		TechnicalSkills: toWireSkills(snap.Technical),
		SoftSkills:      toWireSkills(snap.Soft),
		HardSkills:      toWireSkills(snap.Hard),
	}
}

// ApplySaveResult reconciles the server's canonical post-save state back into
// the ledger. The server is the source of truth after a successful batch save,
// so the ledger is reloaded from the returned records and every entry becomes
// manual (a persisted skill counts as validated). A failed save must not reach
// this method; the caller leaves the ledger untouched and decides whether to
// retry the whole batch.
func (l *Ledger) ApplySaveResult(saved []types.UserSkill) {
	l.Load(RecordsFromUserSkills(saved))
}

// RecordsFromUserSkills converts persisted user skills from the backend into
// ledger records. Category labels are classified at this boundary; persisted
// skills are always manual.
func RecordsFromUserSkills(saved []types.UserSkill) []Record {
	records := make([]Record, 0, len(saved))
	for _, us := range saved {
		records = append(records, Record{
			Name:       us.Skill.Name,
			Rating:     us.Rating,
			Category:   ClassifyCategory(us.Skill.Category),
			Provenance: ProvenanceManual,
		})
	}
	return records
}

func toWireSkills(records []Record) []types.SkillWithRating {
	out := make([]types.SkillWithRating, 0, len(records))
	for _, rec := range records {
		out = append(out, types.SkillWithRating{Name: rec.Name, Rating: rec.Rating})
	}
	return out
}
