package model

// RevealedTruth is the fixed set of conclusions Truth Weaver draws from a
// shadow's aggregated testimony.
type RevealedTruth struct {
	ProgrammingExperience  string   `json:"programming_experience" validate:"required"`
	ProgrammingLanguage    string   `json:"programming_language" validate:"required"`
	SkillMastery           string   `json:"skill_mastery" validate:"required"`
	LeadershipClaims       string   `json:"leadership_claims" validate:"required"`
	TeamExperience         string   `json:"team_experience" validate:"required"`
	SkillsAndOtherKeywords []string `json:"skills_and_other_keywords" validate:"required"`
}

// DeceptionPattern pairs a lie-type label with the claims that contradict
// each other across sessions.
type DeceptionPattern struct {
	LieType             string   `json:"lie_type" validate:"required"`
	ContradictoryClaims []string `json:"contradictory_claims" validate:"required"`
}

// ShadowAnalysis is one record of the final report, one per shadow.
type ShadowAnalysis struct {
	ShadowID          string             `json:"shadow_id" validate:"required"`
	RevealedTruth     RevealedTruth      `json:"revealed_truth"`
	DeceptionPatterns []DeceptionPattern `json:"deception_patterns" validate:"dive"`
}
