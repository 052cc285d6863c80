// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package portfolio defines the portfolio content model and its SQLite store.
package portfolio

import (
	"encoding/json"
	"time"
)

// =============================================================================
// SECTION TYPES
// =============================================================================

// SectionType identifies what kind of content a section holds.
type SectionType string

const (
	TypeSkill         SectionType = "skill"
	TypeExperience    SectionType = "experience"
	TypeProject       SectionType = "project"
	TypeCertification SectionType = "certification"
	TypeAchievement   SectionType = "achievement"
)

// Section is one portfolio content record. The Metadata field varies by Type;
// exactly one of the typed metadata accessors below returns data for a given
// section.
type Section struct {
	ID          string      `json:"id"`
	Type        SectionType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`

	// Metadata holds the type-specific payload as raw JSON.
	Metadata json.RawMessage `json:"metadata"`

	ImageURL  string     `json:"image_url,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	DisplayOrder int  `json:"display_order"`
	IsFeatured   bool `json:"is_featured"`
	IsVisible    bool `json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// =============================================================================
// TYPED METADATA
// =============================================================================

// SkillMetadata describes a skill section.
type SkillMetadata struct {
	// Category is one of "frontend", "backend", "tools", "other".
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"` // 0-100
	Icon        string `json:"icon,omitempty"`
}

// ExperienceMetadata describes a work experience section.
type ExperienceMetadata struct {
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Technologies []string `json:"technologies"`
}

// ProjectMetadata describes a project section.
type ProjectMetadata struct {
	TechStack []string `json:"tech_stack"`
	LiveURL   string   `json:"live_url,omitempty"`
	GithubURL string   `json:"github_url,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// CertificationMetadata describes a certification section.
type CertificationMetadata struct {
	Issuer        string `json:"issuer"`
	CredentialID  string `json:"credential_id,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

// AchievementMetadata describes an achievement section.
type AchievementMetadata struct {
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// Skill decodes the section metadata as SkillMetadata.
func (s *Section) Skill() (SkillMetadata, error) {
	var m SkillMetadata
	err := json.Unmarshal(s.Metadata, &m)
	return m, err
}

// Experience decodes the section metadata as ExperienceMetadata.
func (s *Section) Experience() (ExperienceMetadata, error) {
	var m ExperienceMetadata
	err := json.Unmarshal(s.Metadata, &m)
	return m, err
}

// Project decodes the section metadata as ProjectMetadata.
func (s *Section) Project() (ProjectMetadata, error) {
	var m ProjectMetadata
	err := json.Unmarshal(s.Metadata, &m)
	return m, err
}

// Certification decodes the section metadata as CertificationMetadata.
func (s *Section) Certification() (CertificationMetadata, error) {
	var m CertificationMetadata
	err := json.Unmarshal(s.Metadata, &m)
	return m, err
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// ContactInfo holds the public contact details.
type ContactInfo struct {
	Email   string            `json:"email"`
	Socials map[string]string `json:"socials"` // "github", "linkedin", "twitter", "instagram"
}

// Data is an immutable snapshot of all visible portfolio content, grouped by
// section type and already ordered for display. Command handlers only read
// from it; they never mutate it.
type Data struct {
	About          string      `json:"about"`
	Skills         []Section   `json:"skills"`
	Experiences    []Section   `json:"experiences"`
	Projects       []Section   `json:"projects"`
	Certifications []Section   `json:"certifications"`
	Achievements   []Section   `json:"achievements"`
	ContactInfo    ContactInfo `json:"contact_info"`
}

// add routes a section into the matching snapshot group.
func (d *Data) add(s Section) {
	switch s.Type {
	case TypeSkill:
		d.Skills = append(d.Skills, s)
	case TypeExperience:
		d.Experiences = append(d.Experiences, s)
	case TypeProject:
		d.Projects = append(d.Projects, s)
	case TypeCertification:
		d.Certifications = append(d.Certifications, s)
	case TypeAchievement:
		d.Achievements = append(d.Achievements, s)
	}
}

// SectionCount returns the total number of sections in the snapshot.
func (d *Data) SectionCount() int {
	return len(d.Skills) + len(d.Experiences) + len(d.Projects) +
		len(d.Certifications) + len(d.Achievements)
}
