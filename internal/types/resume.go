// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParsedSections holds the structured parse of a resume text.
// Each field is a list of markers discovered by the extraction collaborator;
// an empty list means the section was not found.
type ParsedSections struct {
	Contact    []string `json:"contact"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Skills     []string `json:"skills"`
}

// HasContact reports whether any contact markers were found.
func (p ParsedSections) HasContact() bool { return len(p.Contact) > 0 }

// HasExperience reports whether any experience markers were found.
func (p ParsedSections) HasExperience() bool { return len(p.Experience) > 0 }

// HasEducation reports whether any education markers were found.
func (p ParsedSections) HasEducation() bool { return len(p.Education) > 0 }

// HasSkills reports whether any skill markers were found.
func (p ParsedSections) HasSkills() bool { return len(p.Skills) > 0 }

// ResumeProfile holds the named fields extracted from a resume that feed
// candidate ranking. Empty strings mean the field was not present.
type ResumeProfile struct {
	FullName        string `json:"full_name"`
	Role            string `json:"role"`
	Degree          string `json:"degree"`
	Institution     string `json:"institution"`
	TechnicalSkills string `json:"technical_skills"` // comma-separated
	ProjectTitle    string `json:"project_title"`
	Experience      string `json:"experience"`
}

// SkillList splits the comma-separated technical skills into trimmed entries.
func (p ResumeProfile) SkillList() []string {
	if p.TechnicalSkills == "" {
		return nil
	}
	parts := strings.Split(p.TechnicalSkills, ",")
	skills := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ResumeDocument is a stored resume: the extracted plain text (immutable),
// its structured parse, and the most recent scoring result. An improved
// variant references its original through ParentID and is scored
// independently; scoring a variant never mutates the original.
type ResumeDocument struct {
	ID          uuid.UUID      `json:"id"`
	CandidateID uuid.UUID      `json:"candidate_id"`
	Text        string         `json:"text"`
	Sections    ParsedSections `json:"sections"`
	Profile     ResumeProfile  `json:"profile"`
	Result      *AtsResult     `json:"result,omitempty"`
	ParentID    *uuid.UUID     `json:"parent_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	ScoredAt    *time.Time     `json:"scored_at,omitempty"`
}

// IsVariant reports whether this document was derived from another resume.
func (r *ResumeDocument) IsVariant() bool { return r.ParentID != nil }
