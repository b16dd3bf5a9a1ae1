package ats

import "strings"

// RoleGeneral is the fallback role when no role indicators match.
const RoleGeneral = "general"

// RoleKeywords pairs a professional role with the indicator words that
// suggest it and the ATS keywords relevant to it. Declaration order matters:
// ties between roles with equal indicator hits go to the earlier entry.
type RoleKeywords struct {
	Role       string
	Indicators []string
	Keywords   []string
}

// defaultRoles is the built-in role classification and keyword table.
func defaultRoles() []RoleKeywords {
	return []RoleKeywords{
		{
			Role:       "software_engineer",
			Indicators: []string{"software", "developer", "engineer", "programming"},
			Keywords: []string{
				"python", "java", "javascript", "typescript", "react", "node",
				"api", "rest", "database", "sql", "nosql", "mongodb",
				"git", "github", "agile", "scrum", "docker", "kubernetes",
				"aws", "cloud", "ci/cd", "testing", "unit test",
			},
		},
		{
			Role:       "data_scientist",
			Indicators: []string{"data", "scientist", "analytics", "machine learning"},
			Keywords: []string{
				"python", "r", "sql", "machine learning", "deep learning",
				"tensorflow", "pytorch", "pandas", "numpy", "scikit-learn",
				"data analysis", "statistics", "visualization", "tableau",
				"big data", "spark", "hadoop",
			},
		},
		{
			Role:       "product_manager",
			Indicators: []string{"product", "manager", "roadmap", "strategy"},
			Keywords: []string{
				"roadmap", "stakeholder", "user research", "analytics",
				"metrics", "kpi", "agile", "scrum", "jira",
				"product strategy", "market research", "a/b testing",
				"user experience", "prioritization",
			},
		},
	}
}

// defaultGeneralKeywords apply to every role on top of its own list.
func defaultGeneralKeywords() []string {
	return []string{
		"leadership", "teamwork", "communication", "problem solving",
		"project management", "collaboration", "strategic thinking",
	}
}

// DetectRole infers the likely professional role from indicator keyword
// density. All-zero hit counts yield RoleGeneral; ties go to the role
// declared first in the table.
func (s *Scorer) DetectRole(text string) string {
	lower := strings.ToLower(text)

	best := RoleGeneral
	bestHits := 0
	for _, role := range s.roles {
		hits := 0
		for _, ind := range role.Indicators {
			if strings.Contains(lower, ind) {
				hits++
			}
		}
		if hits > bestHits {
			best = role.Role
			bestHits = hits
		}
	}
	return best
}

// relevantKeywords returns the keyword set for a role plus the general
// keywords shared by every role.
func (s *Scorer) relevantKeywords(role string) []string {
	var keywords []string
	for _, r := range s.roles {
		if r.Role == role {
			keywords = append(keywords, r.Keywords...)
			break
		}
	}
	return append(keywords, s.general...)
}
