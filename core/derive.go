package core

import "strings"

// DerivationText returns the text a profile embedding is generated from.
//
// When enrichment has produced a comprehensive VectorizationText, that text
// is used verbatim. Otherwise the text is synthesized from the profile's
// fields in a fixed order. Re-deriving from an unchanged profile always
// produces byte-identical output, so HashText over it reliably detects
// "nothing changed".
func (p *Profile) DerivationText() string {
	if p.VectorizationText != "" {
		return p.VectorizationText
	}

	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(". ")
	b.WriteString(p.Headline)
	b.WriteString(". ")
	b.WriteString(p.Bio)
	b.WriteString(". ")
	b.WriteString(p.ExperienceSummary)
	b.WriteString(". ")
	b.WriteString(p.IntentText)
	b.WriteString(". Skills: ")
	b.WriteString(strings.Join(p.Skills, ", "))
	b.WriteString(". Industries: ")
	b.WriteString(strings.Join(p.Industries, ", "))
	b.WriteString(". Expertise: ")
	b.WriteString(strings.Join(p.ExpertiseAreas, ", "))
	b.WriteString(". Location: ")
	b.WriteString(p.Location)
	b.WriteString(". Roles: ")
	b.WriteString(strings.Join(p.AllRoles, ", "))
	b.WriteString(". Companies: ")
	b.WriteString(strings.Join(p.AllCompanies, ", "))
	b.WriteString(". Education: ")
	b.WriteString(p.EducationSummary)
	b.WriteString(". Achievements: ")
	b.WriteString(strings.Join(p.KeyAchievements, ". "))
	b.WriteString(".")
	return b.String()
}
