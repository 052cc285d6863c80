// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package resume renders the portfolio snapshot as a Markdown resume.
package resume

import (
	"fmt"
	"strings"
	"time"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
)

// Options controls resume rendering.
type Options struct {
	// Name is the headline at the top of the document.
	Name string

	// Now anchors "Present" date ranges. Zero means time.Now.
	Now time.Time
}

// Markdown builds a Markdown resume from the snapshot. A nil snapshot
// produces a minimal document rather than an error so the resume endpoint
// always has something to serve.
func Markdown(data *portfolio.Data, opts Options) string {
	if opts.Name == "" {
		opts.Name = "Hassan Kazmi"
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", opts.Name)

	if data == nil {
		b.WriteString("_Portfolio data is not available._\n")
		return b.String()
	}

	if data.ContactInfo.Email != "" {
		fmt.Fprintf(&b, "%s", data.ContactInfo.Email)
		for _, network := range []string{"github", "linkedin"} {
			if url := data.ContactInfo.Socials[network]; url != "" {
				fmt.Fprintf(&b, " | %s", url)
			}
		}
		b.WriteString("\n\n")
	}

	if data.About != "" {
		fmt.Fprintf(&b, "%s\n\n", data.About)
	}

	writeExperience(&b, data, opts.Now)
	writeProjects(&b, data)
	writeSkills(&b, data)
	writeCertifications(&b, data)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeExperience(b *strings.Builder, data *portfolio.Data, now time.Time) {
	if len(data.Experiences) == 0 {
		return
	}
	b.WriteString("## Experience\n\n")

	for _, sec := range data.Experiences {
		meta, err := sec.Experience()
		if err != nil {
			continue
		}

		fmt.Fprintf(b, "### %s, %s\n\n", sec.Title, meta.Company)
		fmt.Fprintf(b, "_%s_\n\n", dateRange(sec.StartDate, sec.EndDate))
		if sec.Description != "" {
			fmt.Fprintf(b, "%s\n\n", sec.Description)
		}
		if len(meta.Technologies) > 0 {
			fmt.Fprintf(b, "Technologies: %s\n\n", strings.Join(meta.Technologies, ", "))
		}
	}
}

func writeProjects(b *strings.Builder, data *portfolio.Data) {
	if len(data.Projects) == 0 {
		return
	}
	b.WriteString("## Projects\n\n")

	for _, sec := range data.Projects {
		meta, err := sec.Project()
		if err != nil {
			continue
		}

		fmt.Fprintf(b, "### %s\n\n", sec.Title)
		if sec.Description != "" {
			fmt.Fprintf(b, "%s\n\n", sec.Description)
		}
		if len(meta.TechStack) > 0 {
			fmt.Fprintf(b, "Built with %s.", strings.Join(meta.TechStack, ", "))
		}
		if meta.GithubURL != "" {
			fmt.Fprintf(b, " [Source](%s)", meta.GithubURL)
		}
		if meta.LiveURL != "" {
			fmt.Fprintf(b, " [Live](%s)", meta.LiveURL)
		}
		b.WriteString("\n\n")
	}
}

func writeSkills(b *strings.Builder, data *portfolio.Data) {
	if len(data.Skills) == 0 {
		return
	}
	b.WriteString("## Skills\n\n")

	byCategory := map[string][]string{}
	var order []string
	for _, sec := range data.Skills {
		meta, err := sec.Skill()
		if err != nil {
			continue
		}
		if _, seen := byCategory[meta.Category]; !seen {
			order = append(order, meta.Category)
		}
		byCategory[meta.Category] = append(byCategory[meta.Category], sec.Title)
	}

	for _, category := range order {
		label := strings.ToUpper(category[:1]) + category[1:]
		fmt.Fprintf(b, "- **%s**: %s\n", label, strings.Join(byCategory[category], ", "))
	}
	b.WriteString("\n")
}

func writeCertifications(b *strings.Builder, data *portfolio.Data) {
	if len(data.Certifications) == 0 {
		return
	}
	b.WriteString("## Certifications\n\n")

	for _, sec := range data.Certifications {
		meta, err := sec.Certification()
		if err != nil {
			continue
		}
		line := sec.Title
		if meta.Issuer != "" {
			line += ", " + meta.Issuer
		}
		if sec.StartDate != nil {
			line += " (" + sec.StartDate.Format("January 2006") + ")"
		}
		fmt.Fprintf(b, "- %s\n", line)
	}
	b.WriteString("\n")
}

func dateRange(start, end *time.Time) string {
	startStr := ""
	if start != nil {
		startStr = start.Format("Jan 2006")
	}
	endStr := "Present"
	if end != nil {
		endStr = end.Format("Jan 2006")
	}
	return startStr + " - " + endStr
}
