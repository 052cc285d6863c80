// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// DEMO SEED DATA
// =============================================================================

// Seed replaces the store contents with the demo portfolio dataset. It is
// invoked by the `seed` subcommand so a fresh install has something to show.
func Seed(ctx context.Context, store *Store) error {
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}

	contact := ContactInfo{
		Email: "hello@hassankazmi.dev",
		Socials: map[string]string{
			"github":    "https://github.com/sm-Hassan-Kazmi",
			"linkedin":  "https://linkedin.com/in/sm-hassan-kazmi",
			"instagram": "https://instagram.com/hassankazmi.dev",
		},
	}

	about := "Software engineer building backend systems and terminal-flavored " +
		"web experiences. I like databases, distributed systems, and interfaces " +
		"that feel like the command line. Type 'help' to look around."

	if err := store.SaveProfile(ctx, about, contact); err != nil {
		return err
	}

	for _, sec := range demoSections() {
		if err := store.SaveSection(ctx, sec); err != nil {
			return err
		}
	}

	return nil
}

func skillSection(id, title, category string, proficiency, order int) Section {
	meta, _ := json.Marshal(SkillMetadata{Category: category, Proficiency: proficiency})
	return Section{
		ID:           id,
		Type:         TypeSkill,
		Title:        title,
		Metadata:     meta,
		DisplayOrder: order,
		IsVisible:    true,
	}
}

func date(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func demoSections() []Section {
	expMeta := func(company, location string, tech ...string) json.RawMessage {
		m, _ := json.Marshal(ExperienceMetadata{Company: company, Location: location, Technologies: tech})
		return m
	}
	projMeta := func(live, gh string, stack ...string) json.RawMessage {
		m, _ := json.Marshal(ProjectMetadata{TechStack: stack, LiveURL: live, GithubURL: gh})
		return m
	}
	certMeta := func(issuer, credID, credURL string) json.RawMessage {
		m, _ := json.Marshal(CertificationMetadata{Issuer: issuer, CredentialID: credID, CredentialURL: credURL})
		return m
	}

	return []Section{
		// Skills
		skillSection("skill-ts", "TypeScript", "frontend", 90, 0),
		skillSection("skill-react", "React", "frontend", 85, 1),
		skillSection("skill-css", "CSS / Tailwind", "frontend", 80, 2),
		skillSection("skill-go", "Go", "backend", 85, 0),
		skillSection("skill-node", "Node.js", "backend", 80, 1),
		skillSection("skill-sql", "PostgreSQL", "backend", 75, 2),
		skillSection("skill-git", "Git", "tools", 90, 0),
		skillSection("skill-docker", "Docker", "tools", 70, 1),

		// Experience
		{
			ID: "exp-acme", Type: TypeExperience,
			Title:       "Senior Software Engineer",
			Description: "Own the service layer for the customer-facing platform; led the migration from a monolith to a handful of Go services.",
			Metadata:    expMeta("Acme Systems", "Remote", "Go", "PostgreSQL", "Kubernetes"),
			StartDate:   date(2023, 3, 1),
			IsVisible:   true,
		},
		{
			ID: "exp-initech", Type: TypeExperience,
			Title:        "Software Engineer",
			Description:  "Built internal tooling and the public API. Shipped the reporting pipeline end to end.",
			Metadata:     expMeta("Initech", "Lahore, PK", "TypeScript", "React", "Node.js"),
			StartDate:    date(2021, 1, 15),
			EndDate:      date(2023, 2, 28),
			DisplayOrder: 1,
			IsVisible:    true,
		},

		// Projects
		{
			ID: "proj-terminal", Type: TypeProject,
			Title:        "Terminal Portfolio",
			Description:  "This site. A command interpreter with themes, autocomplete, and easter eggs.",
			Metadata:     projMeta("https://hassankazmi.dev", "https://github.com/sm-Hassan-Kazmi/ai-portfolio", "Go", "Bubble Tea", "SQLite"),
			StartDate:    date(2024, 6, 1),
			IsFeatured:   true,
			IsVisible:    true,
			DisplayOrder: 0,
		},
		{
			ID: "proj-queue", Type: TypeProject,
			Title:        "miniqueue",
			Description:  "A small persistent message queue with at-least-once delivery and a plain HTTP API.",
			Metadata:     projMeta("", "https://github.com/sm-Hassan-Kazmi/miniqueue", "Go", "SQLite"),
			StartDate:    date(2023, 9, 1),
			IsFeatured:   true,
			IsVisible:    true,
			DisplayOrder: 1,
		},
		{
			ID: "proj-lintbot", Type: TypeProject,
			Title:        "lintbot",
			Description:  "GitHub bot that annotates pull requests with style findings.",
			Metadata:     projMeta("", "https://github.com/sm-Hassan-Kazmi/lintbot", "TypeScript", "GitHub API"),
			StartDate:    date(2022, 4, 1),
			IsVisible:    true,
			DisplayOrder: 2,
		},

		// Certifications
		{
			ID: "cert-aws", Type: TypeCertification,
			Title:     "AWS Certified Solutions Architect - Associate",
			Metadata:  certMeta("Amazon Web Services", "AWS-SAA-0042", "https://aws.amazon.com/verification"),
			StartDate: date(2023, 11, 1),
			IsVisible: true,
		},
		{
			ID: "cert-cka", Type: TypeCertification,
			Title:        "Certified Kubernetes Administrator",
			Metadata:     certMeta("Cloud Native Computing Foundation", "CKA-2024-1187", ""),
			StartDate:    date(2024, 2, 1),
			DisplayOrder: 1,
			IsVisible:    true,
		},
	}
}
