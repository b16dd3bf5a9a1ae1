package ats

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// sectionHeaders maps required section names to the header words that
// introduce them in common resume layouts.
var sectionHeaders = map[string][]string{
	"contact":    {"contact", "email", "phone", "@"},
	"experience": {"experience", "employment", "work history"},
	"education":  {"education", "degree", "university", "college"},
	"skills":     {"skills", "technologies", "technical proficiencies"},
}

// ParseSections produces a structured parse of raw resume text using header
// heuristics. The extraction collaborator normally supplies the parse; this
// is used by the CLI when scoring a local text file directly.
func ParseSections(text string) types.ParsedSections {
	var sections types.ParsedSections

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		if lower == "" {
			continue
		}
		for name, markers := range sectionHeaders {
			for _, marker := range markers {
				if !strings.Contains(lower, marker) {
					continue
				}
				trimmed := strings.TrimSpace(line)
				switch name {
				case "contact":
					sections.Contact = append(sections.Contact, trimmed)
				case "experience":
					sections.Experience = append(sections.Experience, trimmed)
				case "education":
					sections.Education = append(sections.Education, trimmed)
				case "skills":
					sections.Skills = append(sections.Skills, trimmed)
				}
				break
			}
		}
	}

	return sections
}
