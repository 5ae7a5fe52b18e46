package skills

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Provenance records how a skill entered the ledger.
type Provenance string

const (
	// ProvenanceManual marks skills the user typed or edited directly.
	ProvenanceManual Provenance = "manual"
	// ProvenanceImported marks skills that arrived via resume extraction
	// and have not yet been validated by the user.
	ProvenanceImported Provenance = "imported"
)

// Record is a single skill entry in the ledger.
type Record struct {
	Name       string
	Rating     int
	Category   Category
	Provenance Provenance
}

// Key returns the record's identity key within its category.
func (r Record) Key() string {
	return Normalize(r.Name)
}

// Snapshot is an ordered view of the ledger's three category collections.
type Snapshot struct {
	Technical []Record
	Soft      []Record
	Hard      []Record
}

// ForCategory returns the snapshot's collection for the given category.
func (s Snapshot) ForCategory(cat Category) []Record {
	switch cat {
	case CategorySoft:
		return s.Soft
	case CategoryHard:
		return s.Hard
	default:
		return s.Technical
	}
}

// Ledger owns the in-memory skill state: one ordered, duplicate-free
// collection per category. Invariant: no two records in the same category
// share an identity key. The ledger is a single-writer structure; callers
// serialize access through the UI/CLI event flow.
type Ledger struct {
	byCategory map[Category][]Record
	dirty      bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	l := &Ledger{byCategory: make(map[Category][]Record, len(Categories))}
	for _, cat := range Categories {
		l.byCategory[cat] = nil
	}
	return l
}

// Load replaces all three collections from a server baseline and clears the
// dirty flag. Duplicate identity keys in the baseline keep the first record,
// preserving the uniqueness invariant even against a misbehaving server.
func (l *Ledger) Load(baseline []Record) {
	for _, cat := range Categories {
		l.byCategory[cat] = nil
	}
	for _, rec := range baseline {
		cat := rec.Category
		if _, ok := l.byCategory[cat]; !ok {
			cat = CategoryTechnical
			rec.Category = cat
		}
		if l.indexOf(cat, rec.Key()) >= 0 {
			continue
		}
		l.byCategory[cat] = append(l.byCategory[cat], rec)
	}
	l.dirty = false
}

// Upsert adds or updates a manually entered skill. If a record with the same
// identity key exists, its rating is replaced and its provenance becomes
// manual (the stored display name is kept); otherwise a new manual record is
// appended. Returns the resulting record.
func (l *Ledger) Upsert(cat Category, name string, rating int) Record {
	l.dirty = true
	if idx := l.indexOf(cat, Normalize(name)); idx >= 0 {
		rec := &l.byCategory[cat][idx]
		rec.Rating = rating
		rec.Provenance = ProvenanceManual
		return *rec
	}
	rec := Record{Name: strings.TrimSpace(name), Rating: rating, Category: cat, Provenance: ProvenanceManual}
	l.byCategory[cat] = append(l.byCategory[cat], rec)
	return rec
}

// Rename locates a record by oldName's identity key and replaces its name and
// rating, marking it manual. If the new identity key collides with a different
// existing record, the edited record wins and the collision entry is removed.
// Returns false (no-op) when oldName is not present.
func (l *Ledger) Rename(cat Category, oldName, newName string, rating int) (Record, bool) {
	idx := l.indexOf(cat, Normalize(oldName))
	if idx < 0 {
		return Record{}, false
	}
	newKey := Normalize(newName)
	if other := l.indexOf(cat, newKey); other >= 0 && other != idx {
		l.byCategory[cat] = append(l.byCategory[cat][:other], l.byCategory[cat][other+1:]...)
		if other < idx {
			idx--
		}
	}
	l.dirty = true
	rec := &l.byCategory[cat][idx]
	rec.Name = strings.TrimSpace(newName)
	rec.Rating = rating
	rec.Provenance = ProvenanceManual
	return *rec, true
}

// Remove deletes the record matching the identity key. No-op if absent.
// Returns whether a record was removed.
func (l *Ledger) Remove(cat Category, name string) bool {
	idx := l.indexOf(cat, Normalize(name))
	if idx < 0 {
		return false
	}
	l.byCategory[cat] = append(l.byCategory[cat][:idx], l.byCategory[cat][idx+1:]...)
	l.dirty = true
	return true
}

// ImportUnrated merges extraction output into the ledger. Each entry is
// classified, then inserted as an unrated imported record unless its identity
// key is already present in that category (existing entries win, so the
// operation is additive and idempotent). Blank names are ignored. Returns the
// number of records actually added.
func (l *Ledger) ImportUnrated(results []types.ExtractedSkill) int {
	added := 0
	for _, res := range results {
		name := strings.TrimSpace(res.Name)
		if Normalize(name) == "" {
			continue
		}
		cat := ClassifyCategory(res.Category)
		if l.indexOf(cat, Normalize(name)) >= 0 {
			continue
		}
		l.byCategory[cat] = append(l.byCategory[cat], Record{
			Name:       name,
			Rating:     0,
			Category:   cat,
			Provenance: ProvenanceImported,
		})
		added++
	}
	if added > 0 {
		l.dirty = true
	}
	return added
}

// Snapshot returns ordered copies of the three category collections, safe for
// rendering and serialization without aliasing ledger state.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Technical: copyRecords(l.byCategory[CategoryTechnical]),
		Soft:      copyRecords(l.byCategory[CategorySoft]),
		Hard:      copyRecords(l.byCategory[CategoryHard]),
	}
}

// Len returns the total number of records across all categories.
func (l *Ledger) Len() int {
	n := 0
	for _, cat := range Categories {
		n += len(l.byCategory[cat])
	}
	return n
}

// Dirty reports whether the ledger has unsaved mutations since the last
// Load or ApplySaveResult.
func (l *Ledger) Dirty() bool {
	return l.dirty
}

func (l *Ledger) indexOf(cat Category, key string) int {
	for i, rec := range l.byCategory[cat] {
		if rec.Key() == key {
			return i
		}
	}
	return -1
}

func copyRecords(src []Record) []Record {
	if len(src) == 0 {
		return nil
	}
	out := make([]Record, len(src))
	copy(out, src)
	return out
}
