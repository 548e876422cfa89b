package hmmer

import (
	"strings"

	"github.com/mvillar/annokit/internal/model"
)

// better reports whether candidate beats the currently held hit: strictly
// smaller per-domain independent e-value wins, an exact e-value tie is
// broken by strictly larger per-domain bit-score, and any remaining tie
// keeps the first hit encountered.
func better(candidate, held model.DomainHit) bool {
	if candidate.DomIEvalue != held.DomIEvalue {
		return candidate.DomIEvalue < held.DomIEvalue
	}
	return candidate.DomScore > held.DomScore
}

// BestPerTarget reduces hits to the single best hit per target name. Used
// when the table's target column holds the sequence being annotated
// (hmmsearch orientation).
func BestPerTarget(hits []model.DomainHit) map[string]model.DomainHit {
	best := make(map[string]model.DomainHit)
	for _, h := range hits {
		cur, seen := best[h.TargetName]
		if !seen || better(h, cur) {
			best[h.TargetName] = h
		}
	}
	return best
}

// BestPerQuery keeps only hits whose target accession matches the given
// family accession (version suffix stripped, e.g. PF01083.23 -> PF01083)
// and reduces them to the single best hit per query name (hmmscan
// orientation: target = family, query = protein).
func BestPerQuery(hits []model.DomainHit, accession string) map[string]model.DomainHit {
	accession = strings.TrimSpace(accession)
	best := make(map[string]model.DomainHit)
	for _, h := range hits {
		acc, _, _ := strings.Cut(h.TargetAcc, ".")
		if acc != accession {
			continue
		}
		cur, seen := best[h.QueryName]
		if !seen || better(h, cur) {
			best[h.QueryName] = h
		}
	}
	return best
}
