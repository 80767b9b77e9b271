package openai

import (
	"fmt"
	"strings"

	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/core"
)

const rankingResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "rankings": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "index": {
            "type": "integer",
            "minimum": 1
          },
          "score": {
            "type": "integer",
            "minimum": 0,
            "maximum": 100
          },
          "explanation": {
            "type": "string"
          }
        },
        "required": ["index", "score", "explanation"],
        "additionalProperties": false
      }
    }
  },
  "required": ["rankings"],
  "additionalProperties": false
}`

const rankingPromptTemplate = `You rank professional profiles by compatibility with a search query.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "index" refers to the number each profile is listed under. Use only listed numbers.
- "score" is an integer from 0 (no fit) to 100 (ideal fit) rating compatibility with the query.
- "explanation" is one short sentence naming the concrete reason for the score.
- Rank every listed profile exactly once.
- Base scores only on the listed profile details. Do not invent skills or experience.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildRankingSystemPrompt creates the system prompt for relevance ranking.
func buildRankingSystemPrompt() string {
	return fmt.Sprintf(rankingPromptTemplate, rankingResponseSchema)
}

// buildRankingUserPrompt enumerates the candidates by 1-based position.
// Candidates are addressed by position only; no external identifiers are
// exposed to the model.
func buildRankingUserPrompt(query string, candidates []ai.RankCandidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rank these %d profiles by compatibility with query: %q\n\nProfiles:\n", len(candidates), query)
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s - %s\n   Intent: %s\n   Skills: %s\n\n",
			i+1, c.Name, c.Headline, c.Intent, strings.Join(c.Skills, ", "))
	}
	return b.String()
}

const insightPromptTemplate = `You are an expert AI matchmaking assistant specializing in professional networking.
Analyze why the target profile could be valuable to the viewer and explain the connection potential.

Output ONLY valid JSON with this exact shape:
{
  "score": 0-100,
  "category": one of %q,
  "headline": "one sentence explaining why this is a strong match (max 100 chars)",
  "key_strengths": ["specific strength with concrete evidence", ...],
  "complementary_skills": ["skill that complements the viewer's needs", ...],
  "shared_context": ["shared industry/domain/interest", ...],
  "value_proposition": "2-3 sentences on the unique value this person brings, referencing actual experience",
  "next_steps": ["actionable suggestion for how to engage", ...],
  "confidence": "high" | "medium" | "low"
}

Rules:
- Reference actual skills, experience, companies, and achievements from the profiles.
- Focus on how the target can help the viewer achieve their stated intent.
- Be honest about confidence based on available information.
- No markdown, no extra text outside the JSON object.`

// buildInsightSystemPrompt creates the system prompt for match insights.
func buildInsightSystemPrompt() string {
	return fmt.Sprintf(insightPromptTemplate, ai.MatchCategories)
}

// buildInsightUserPrompt renders both profiles for pairwise analysis.
func buildInsightUserPrompt(viewer, target *core.Profile) string {
	var b strings.Builder
	b.WriteString("VIEWER'S PROFILE (the person searching):\n")
	writeProfileSummary(&b, viewer)
	b.WriteString("\nTARGET PROFILE (the person being viewed):\n")
	writeProfileSummary(&b, target)
	fmt.Fprintf(&b, "\nAnalyze how %s could be valuable to %s based on %s's stated intent and background.\n",
		target.Name, viewer.Name, viewer.Name)
	return b.String()
}

func writeProfileSummary(b *strings.Builder, p *core.Profile) {
	fmt.Fprintf(b, "Name: %s\n", p.Name)
	fmt.Fprintf(b, "Headline: %s\n", orNA(p.Headline))
	fmt.Fprintf(b, "Bio: %s\n", orNA(p.Bio))
	fmt.Fprintf(b, "Intent: %s\n", orNA(p.IntentText))
	fmt.Fprintf(b, "Skills: %s\n", orNA(strings.Join(p.Skills, ", ")))
	fmt.Fprintf(b, "Expertise: %s\n", orNA(strings.Join(p.ExpertiseAreas, ", ")))
	fmt.Fprintf(b, "Industries: %s\n", orNA(strings.Join(p.Industries, ", ")))
	fmt.Fprintf(b, "Experience: %s\n", orNA(p.ExperienceSummary))
	fmt.Fprintf(b, "Achievements: %s\n", orNA(strings.Join(p.KeyAchievements, "; ")))
	fmt.Fprintf(b, "Location: %s\n", orNA(p.Location))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
