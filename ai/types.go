package ai

// RankCandidate is the condensed view of a profile handed to the ranking
// model. Candidates carry no identifiers: the model addresses them purely
// by list position, which it cannot hallucinate the way it can an opaque id.
type RankCandidate struct {
	Name     string
	Headline string
	Intent   string
	Skills   []string
}

// RankedMatch is one ranked entry returned by a MatchRanker.
type RankedMatch struct {
	// Index is the position of the candidate in the input slice.
	Index int

	// Score is the model's relevance score normalized into [0,1].
	Score float32

	// Explanation is a short natural-language justification.
	Explanation string
}

// MatchCategories lists the relationship categories a match insight may
// assign to a pairing.
var MatchCategories = []string{
	"cofounder",
	"advisor",
	"client",
	"investor",
	"collaborator",
	"mentor",
	"peer",
}

// MatchInsight is a structured pairwise analysis of why a target profile
// could be valuable to a viewer.
type MatchInsight struct {
	// Score is the match strength from 0 to 100.
	Score int

	// Category is one of MatchCategories.
	Category string

	// Headline is a one-sentence summary of the match.
	Headline string

	// KeyStrengths are specific strengths with concrete evidence.
	KeyStrengths []string

	// ComplementarySkills are skills that complement the viewer's needs.
	ComplementarySkills []string

	// SharedContext lists shared industries, domains or interests.
	SharedContext []string

	// ValueProposition explains the unique value the target brings.
	ValueProposition string

	// NextSteps are actionable suggestions for how to engage.
	NextSteps []string

	// Confidence is "high", "medium" or "low" based on available information.
	Confidence string
}
