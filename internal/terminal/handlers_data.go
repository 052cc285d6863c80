// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
)

const rule = 50

// =============================================================================
// SKILLS
// =============================================================================

type skillEntry struct {
	name        string
	category    string
	proficiency int
}

func handleSkills(ctx *Context, args []string, flags Flags) (Output, error) {
	skills := skillsFromSnapshot(ctx.Data)
	if len(skills) == 0 {
		return Text("No skills data available."), nil
	}

	// Mutually exclusive category filters; when several are set the first
	// one in this priority order wins.
	filter := ""
	switch {
	case flags.Has("frontend"):
		filter = "frontend"
	case flags.Has("backend"):
		filter = "backend"
	case flags.Has("tools"):
		filter = "tools"
	}

	filtered := skills
	if filter != "" {
		filtered = nil
		for _, s := range skills {
			if s.category == filter {
				filtered = append(filtered, s)
			}
		}
	}

	grouped, categories := groupSkills(filtered)

	title := "Skills - All Categories"
	if filter != "" {
		title = "Skills - " + capitalize(filter)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n\n", title, strings.Repeat("=", len(title)))

	for _, category := range categories {
		fmt.Fprintf(&b, "%s:\n", capitalize(category))
		for _, s := range grouped[category] {
			fmt.Fprintf(&b, "  %-20s %s %d%%\n", s.name, progressBar(s.proficiency), s.proficiency)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total Skills: %d\n", len(filtered))
	if filter == "" {
		b.WriteString("\nTip: Use --frontend, --backend, or --tools to filter by category\n")
	}

	return Text(b.String()), nil
}

// groupSkills buckets skills by category, sorting each bucket by descending
// proficiency. The sort is stable so equal proficiencies keep snapshot
// order. Categories come back in first-seen order.
func groupSkills(skills []skillEntry) (map[string][]skillEntry, []string) {
	grouped := make(map[string][]skillEntry)
	var categories []string

	for _, s := range skills {
		if _, seen := grouped[s.category]; !seen {
			categories = append(categories, s.category)
		}
		grouped[s.category] = append(grouped[s.category], s)
	}

	for _, category := range categories {
		bucket := grouped[category]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].proficiency > bucket[j].proficiency
		})
	}

	return grouped, categories
}

// progressBar renders a 20-cell bar filled proportionally to the percentage.
func progressBar(proficiency int) string {
	const barLength = 20
	filled := int(float64(proficiency)/100*barLength + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barLength {
		filled = barLength
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled) + "]"
}

func skillsFromSnapshot(data *portfolio.Data) []skillEntry {
	if data == nil {
		return nil
	}
	var skills []skillEntry
	for _, sec := range data.Skills {
		meta, err := sec.Skill()
		if err != nil {
			continue
		}
		skills = append(skills, skillEntry{
			name:        sec.Title,
			category:    meta.Category,
			proficiency: meta.Proficiency,
		})
	}
	return skills
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// =============================================================================
// EXPERIENCE
// =============================================================================

type experienceEntry struct {
	title        string
	company      string
	location     string
	startDate    time.Time
	endDate      *time.Time
	description  string
	technologies []string
}

func handleExperience(ctx *Context, args []string, flags Flags) (Output, error) {
	experiences := experiencesFromSnapshot(ctx.Data, ctx.now())
	if len(experiences) == 0 {
		return Text("No experience data available."), nil
	}

	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].startDate.After(experiences[j].startDate)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "\nWork Experience\n%s\n\n", strings.Repeat("=", rule))

	for i, exp := range experiences {
		fmt.Fprintf(&b, "%s\n", exp.title)
		fmt.Fprintf(&b, "%s • %s\n", exp.company, exp.location)
		fmt.Fprintf(&b, "%s (%s)\n\n", formatDateRange(exp.startDate, exp.endDate),
			formatMonths(monthsBetween(exp.startDate, endOrNow(exp.endDate, ctx.now()))))
		fmt.Fprintf(&b, "%s\n\n", exp.description)
		fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(exp.technologies, ", "))

		if i < len(experiences)-1 {
			fmt.Fprintf(&b, "\n%s\n\n", strings.Repeat("-", rule))
		}
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", rule))
	fmt.Fprintf(&b, "Total Experience: %s\n", formatMonths(totalMonths(experiences, ctx.now())))

	return Text(b.String()), nil
}

func endOrNow(end *time.Time, now time.Time) time.Time {
	if end != nil {
		return *end
	}
	return now
}

// monthsBetween converts a date span into whole months using a fixed average
// month length of 30.44 days, floor-divided.
func monthsBetween(start, end time.Time) int {
	days := end.Sub(start).Hours() / 24
	return int(days / 30.44)
}

// totalMonths sums each record's own month count. Overlapping jobs are
// counted twice on purpose; the total reflects time worked, not the span of
// the career.
func totalMonths(experiences []experienceEntry, now time.Time) int {
	total := 0
	for _, exp := range experiences {
		total += monthsBetween(exp.startDate, endOrNow(exp.endDate, now))
	}
	return total
}

func formatMonths(months int) string {
	years := months / 12
	rem := months % 12

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", rem, plural("month", rem))
	case rem == 0:
		return fmt.Sprintf("%d %s", years, plural("year", years))
	default:
		return fmt.Sprintf("%d %s, %d %s", years, plural("year", years), rem, plural("month", rem))
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func formatDateRange(start time.Time, end *time.Time) string {
	endStr := "Present"
	if end != nil {
		endStr = end.Format("Jan 2006")
	}
	return start.Format("Jan 2006") + " - " + endStr
}

func experiencesFromSnapshot(data *portfolio.Data, now time.Time) []experienceEntry {
	if data == nil {
		return nil
	}
	var experiences []experienceEntry
	for _, sec := range data.Experiences {
		meta, err := sec.Experience()
		if err != nil {
			continue
		}
		location := meta.Location
		if location == "" {
			location = "Remote"
		}
		start := now
		if sec.StartDate != nil {
			start = *sec.StartDate
		}
		experiences = append(experiences, experienceEntry{
			title:        sec.Title,
			company:      meta.Company,
			location:     location,
			startDate:    start,
			endDate:      sec.EndDate,
			description:  sec.Description,
			technologies: meta.Technologies,
		})
	}
	return experiences
}

// =============================================================================
// PROJECTS
// =============================================================================

type projectEntry struct {
	title       string
	description string
	techStack   []string
	liveURL     string
	githubURL   string
	featured    bool
	year        int
}

func handleProjects(ctx *Context, args []string, flags Flags) (Output, error) {
	projects := projectsFromSnapshot(ctx.Data, ctx.now())
	if len(projects) == 0 {
		return Text("No projects data available."), nil
	}

	featuredOnly := flags.Has("featured")

	filtered := projects
	if featuredOnly {
		filtered = nil
		for _, p := range projects {
			if p.featured {
				filtered = append(filtered, p)
			}
		}
	}

	sorted := make([]projectEntry, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].year > sorted[j].year
	})

	title := "All Projects"
	if featuredOnly {
		title = "Featured Projects"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n\n", title, strings.Repeat("=", rule))

	for i, p := range sorted {
		star := ""
		if p.featured {
			star = " ⭐"
		}
		header := fmt.Sprintf("%s%s (%d)", p.title, star, p.year)
		fmt.Fprintf(&b, "%s\n%s\n", header, strings.Repeat("-", len(header)))
		fmt.Fprintf(&b, "%s\n\n", p.description)
		fmt.Fprintf(&b, "Tech Stack: %s\n", strings.Join(p.techStack, ", "))
		if p.liveURL != "" {
			fmt.Fprintf(&b, "Live: %s\n", p.liveURL)
		}
		if p.githubURL != "" {
			fmt.Fprintf(&b, "GitHub: %s\n", p.githubURL)
		}
		if i < len(sorted)-1 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", rule))
	fmt.Fprintf(&b, "Showing %d of %d projects\n", len(sorted), len(projects))

	if !featuredOnly {
		for _, p := range projects {
			if p.featured {
				b.WriteString("\nTip: Use --featured to show only featured projects\n")
				break
			}
		}
	}

	return Text(b.String()), nil
}

func projectsFromSnapshot(data *portfolio.Data, now time.Time) []projectEntry {
	if data == nil {
		return nil
	}
	var projects []projectEntry
	for _, sec := range data.Projects {
		meta, err := sec.Project()
		if err != nil {
			continue
		}
		year := now.Year()
		if sec.StartDate != nil {
			year = sec.StartDate.Year()
		}
		projects = append(projects, projectEntry{
			title:       sec.Title,
			description: sec.Description,
			techStack:   meta.TechStack,
			liveURL:     meta.LiveURL,
			githubURL:   meta.GithubURL,
			featured:    sec.IsFeatured,
			year:        year,
		})
	}
	return projects
}

// =============================================================================
// CERTIFICATIONS
// =============================================================================

func handleCertifications(ctx *Context, args []string, flags Flags) (Output, error) {
	if ctx.Data == nil || len(ctx.Data.Certifications) == 0 {
		return Text("No certifications data available."), nil
	}

	certs := make([]portfolio.Section, len(ctx.Data.Certifications))
	copy(certs, ctx.Data.Certifications)
	now := ctx.now()

	certDate := func(sec portfolio.Section) time.Time {
		if sec.StartDate != nil {
			return *sec.StartDate
		}
		return now
	}

	sort.SliceStable(certs, func(i, j int) bool {
		return certDate(certs[i]).After(certDate(certs[j]))
	})

	var b strings.Builder
	fmt.Fprintf(&b, "\nCertifications & Achievements\n%s\n\n", strings.Repeat("=", rule))

	for i, sec := range certs {
		meta, err := sec.Certification()
		if err != nil {
			continue
		}

		fmt.Fprintf(&b, "%s\n", sec.Title)
		fmt.Fprintf(&b, "Issued by: %s\n", meta.Issuer)
		fmt.Fprintf(&b, "Date: %s\n", certDate(sec).Format("January 2006"))
		if meta.CredentialID != "" {
			fmt.Fprintf(&b, "Credential ID: %s\n", meta.CredentialID)
		}
		if meta.CredentialURL != "" {
			fmt.Fprintf(&b, "Verify: %s\n", meta.CredentialURL)
		}

		if i < len(certs)-1 {
			fmt.Fprintf(&b, "\n%s\n\n", strings.Repeat("-", rule))
		}
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", rule))
	fmt.Fprintf(&b, "Total Certifications: %d\n", len(certs))

	return Text(b.String()), nil
}

// =============================================================================
// STATS
// =============================================================================

type portfolioStats struct {
	skills           int
	experiences      int
	projects         int
	featuredProjects int
	certifications   int
	totalYears       int
	linesOfCode      int
	coffeeConsumed   int
	frontendSkills   int
	backendSkills    int
	toolsSkills      int
}

func handleStats(ctx *Context, args []string, flags Flags) (Output, error) {
	stats := calculateStats(ctx)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(banner("PORTFOLIO STATISTICS"))
	b.WriteString("\n\nContent Overview:\n")
	fmt.Fprintf(&b, "   ├─ Skills: %d\n", stats.skills)
	fmt.Fprintf(&b, "   ├─ Work Experiences: %d\n", stats.experiences)
	fmt.Fprintf(&b, "   ├─ Projects: %d\n", stats.projects)
	fmt.Fprintf(&b, "   ├─ Featured Projects: %d\n", stats.featuredProjects)
	fmt.Fprintf(&b, "   └─ Certifications: %d\n", stats.certifications)
	b.WriteString("\nProfessional Journey:\n")
	fmt.Fprintf(&b, "   └─ Total Experience: %d+ years\n", stats.totalYears)
	b.WriteString("\nDevelopment Stats:\n")
	fmt.Fprintf(&b, "   ├─ Lines of Code Written: ~%s\n", withCommas(stats.linesOfCode))
	fmt.Fprintf(&b, "   └─ Coffee Consumed: %s cups ☕\n", withCommas(stats.coffeeConsumed))
	b.WriteString("\nSkill Distribution:\n")
	fmt.Fprintf(&b, "   ├─ Frontend: %d skills\n", stats.frontendSkills)
	fmt.Fprintf(&b, "   ├─ Backend: %d skills\n", stats.backendSkills)
	fmt.Fprintf(&b, "   └─ Tools & DevOps: %d skills\n", stats.toolsSkills)
	b.WriteString("\nHighlights:\n")
	fmt.Fprintf(&b, "   • %d featured projects showcasing best work\n", stats.featuredProjects)
	fmt.Fprintf(&b, "   • %d professional certifications\n", stats.certifications)
	b.WriteString("   • Full-stack expertise across modern tech stack\n")
	b.WriteString("   • Focus on performance, scalability, and user experience\n")
	b.WriteString("\nType 'help' to explore more commands!\n")

	return Text(b.String()), nil
}

func calculateStats(ctx *Context) portfolioStats {
	// The fun numbers stay fixed either way; only the content counts
	// depend on the snapshot.
	stats := portfolioStats{
		linesOfCode:    150000,
		coffeeConsumed: 2847,
	}

	data := ctx.Data
	if data == nil {
		return stats
	}

	stats.skills = len(data.Skills)
	stats.experiences = len(data.Experiences)
	stats.projects = len(data.Projects)
	stats.certifications = len(data.Certifications)

	for _, sec := range data.Projects {
		if sec.IsFeatured {
			stats.featuredProjects++
		}
	}

	for _, sec := range data.Skills {
		meta, err := sec.Skill()
		if err != nil {
			continue
		}
		switch meta.Category {
		case "frontend":
			stats.frontendSkills++
		case "backend":
			stats.backendSkills++
		case "tools":
			stats.toolsSkills++
		}
	}

	now := ctx.now()
	months := 0
	for _, sec := range data.Experiences {
		if sec.StartDate == nil {
			continue
		}
		months += monthsBetween(*sec.StartDate, endOrNow(sec.EndDate, now))
	}
	stats.totalYears = months / 12

	return stats
}

func withCommas(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// =============================================================================
// CONTACT
// =============================================================================

func handleContact(ctx *Context, args []string, flags Flags) (Output, error) {
	var b strings.Builder
	b.WriteString("Contact Information\n\n")

	if ctx.Data != nil {
		info := ctx.Data.ContactInfo
		if info.Email != "" {
			fmt.Fprintf(&b, "Email: %s\n", info.Email)
		}
		for _, network := range []string{"github", "linkedin", "twitter", "instagram"} {
			if url := info.Socials[network]; url != "" {
				fmt.Fprintf(&b, "%s: %s\n", capitalize(network), url)
			}
		}
	}

	b.WriteString("\nSend a Message")

	// The handler performs no network I/O itself; the caller runs the form
	// and pushes the result through the injected submit channel.
	return Output{
		Success: true,
		Content: Content{
			Kind: KindForm,
			Text: b.String(),
			Form: &FormSpec{
				Title: "Send a Message",
				Fields: []FormField{
					{Name: "name", Label: "Name", Placeholder: "Your name"},
					{Name: "email", Label: "Email", Placeholder: "you@example.com"},
					{Name: "message", Label: "Message", Multiline: true, Placeholder: "What's on your mind?"},
				},
			},
		},
	}, nil
}

// SubmitContact runs a form submission through the execution context's
// submit channel. Callers invoke it after collecting the form fields
// announced by a KindForm output.
func SubmitContact(ctx context.Context, ec *Context, data contact.FormData) contact.Result {
	if ec.Submit == nil {
		return contact.Result{Success: false, Message: "Contact channel is not configured"}
	}
	return ec.Submit(ctx, data)
}

// =============================================================================
// RESUME
// =============================================================================

func handleResume(ctx *Context, args []string, flags Flags) (Output, error) {
	return Output{
		Success: true,
		Content: Content{
			Kind: KindDownload,
			Text: "📄 Generating resume PDF...\n\nYour resume will download shortly.",
			Download: &DownloadSpec{
				Filename: "Hassan_Kazmi_Resume.pdf",
				Path:     "/api/resume",
			},
		},
	}, nil
}
