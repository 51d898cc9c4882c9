package engine

import (
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/lookup"
)

// analyzeCrossRef maps the feed lookup outcome into the breakdown record.
func analyzeCrossRef(res lookup.CrossRefResult) verification.CrossReference {
	return verification.CrossReference{
		FoundInOfficialSources:        res.Found,
		ContradictedByOfficialSources: res.Contradicted,
		SimilarAlertsCount:            res.SimilarCount,
		OfficialSourcesChecked:        res.SourcesChecked,
	}
}
