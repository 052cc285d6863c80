// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
)

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func skillSection(t *testing.T, title, category string, proficiency int) portfolio.Section {
	t.Helper()
	return portfolio.Section{
		Type:      portfolio.TypeSkill,
		Title:     title,
		Metadata:  mustJSON(t, portfolio.SkillMetadata{Category: category, Proficiency: proficiency}),
		IsVisible: true,
	}
}

func experienceSection(t *testing.T, title, company string, start time.Time, end *time.Time) portfolio.Section {
	t.Helper()
	return portfolio.Section{
		Type:      portfolio.TypeExperience,
		Title:     title,
		Metadata:  mustJSON(t, portfolio.ExperienceMetadata{Company: company, Technologies: []string{"Go"}}),
		StartDate: &start,
		EndDate:   end,
		IsVisible: true,
	}
}

func dataContext(t *testing.T, data *portfolio.Data) *Context {
	t.Helper()
	ctx := testContext()
	ctx.Data = data
	return ctx
}

// =============================================================================
// SKILLS
// =============================================================================

func TestSkillsGroupingAndSort(t *testing.T) {
	r := NewRegistry()
	ctx := dataContext(t, &portfolio.Data{
		Skills: []portfolio.Section{
			skillSection(t, "A", "frontend", 50),
			skillSection(t, "B", "frontend", 90),
		},
	})

	out := r.Execute(Parse("skills"), ctx)
	if !out.Success {
		t.Fatalf("skills failed: %+v", out)
	}

	// Anchor on the indented skill rows, not the title text.
	text := out.Content.Text
	rowB := strings.Index(text, "  B ")
	rowA := strings.Index(text, "  A ")
	if rowB < 0 || rowA < 0 {
		t.Fatalf("missing skill rows:\n%s", text)
	}
	if rowB > rowA {
		t.Errorf("B (90%%) should render before A (50%%):\n%s", text)
	}
	if !strings.Contains(text, "Total Skills: 2") {
		t.Errorf("missing total:\n%s", text)
	}
}

func TestSkillsCategoryFilterPrecedence(t *testing.T) {
	r := NewRegistry()
	ctx := dataContext(t, &portfolio.Data{
		Skills: []portfolio.Section{
			skillSection(t, "React", "frontend", 80),
			skillSection(t, "Go", "backend", 85),
			skillSection(t, "Docker", "tools", 70),
		},
	})

	tests := []struct {
		input       string
		wantTitle   string
		wantSkill   string
		absentSkill string
	}{
		{"skills --frontend", "Skills - Frontend", "React", "Go"},
		{"skills --backend", "Skills - Backend", "Go", "React"},
		{"skills --tools", "Skills - Tools", "Docker", "Go"},
		// Frontend wins when several filters are set.
		{"skills --backend --frontend", "Skills - Frontend", "React", "Go"},
	}

	for _, tt := range tests {
		out := r.Execute(Parse(tt.input), ctx)
		text := out.Content.Text
		if !strings.Contains(text, tt.wantTitle) {
			t.Errorf("%q: missing title %q:\n%s", tt.input, tt.wantTitle, text)
		}
		if !strings.Contains(text, tt.wantSkill) {
			t.Errorf("%q: missing %q", tt.input, tt.wantSkill)
		}
		if strings.Contains(text, tt.absentSkill) {
			t.Errorf("%q: should not list %q", tt.input, tt.absentSkill)
		}
	}
}

func TestSkillsNoData(t *testing.T) {
	r := NewRegistry()
	out := r.Execute(Parse("skills"), testContext())
	if !out.Success || out.Content.Text != "No skills data available." {
		t.Errorf("skills without data = %+v", out)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		proficiency int
		wantFilled  int
	}{
		{0, 0},
		{100, 20},
		{50, 10},
		{90, 18},
		{47, 9},  // round(9.4)
		{48, 10}, // round(9.6)
	}

	for _, tt := range tests {
		bar := progressBar(tt.proficiency)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled != tt.wantFilled || filled+empty != 20 {
			t.Errorf("progressBar(%d): %d filled of %d cells, want %d of 20",
				tt.proficiency, filled, filled+empty, tt.wantFilled)
		}
	}
}

// =============================================================================
// EXPERIENCE
// =============================================================================

func TestExperienceZeroDuration(t *testing.T) {
	r := NewRegistry()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := dataContext(t, &portfolio.Data{
		Experiences: []portfolio.Section{
			experienceSection(t, "Engineer", "Acme", start, &start),
		},
	})

	out := r.Execute(Parse("experience"), ctx)
	if !strings.Contains(out.Content.Text, "(0 months)") {
		t.Errorf("startDate == endDate should yield 0 months:\n%s", out.Content.Text)
	}
}

func TestExperienceOverlapDoubleCounts(t *testing.T) {
	r := NewRegistry()

	// Two fully overlapping 12-month jobs total 24 months, not 12. 2024 is
	// a leap year, so this span is 366 days and clears the 30.44-day
	// average month floor.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	ctx := dataContext(t, &portfolio.Data{
		Experiences: []portfolio.Section{
			experienceSection(t, "Job A", "Acme", start, &end),
			experienceSection(t, "Job B", "Initech", start, &end),
		},
	})

	out := r.Execute(Parse("experience"), ctx)
	if !strings.Contains(out.Content.Text, "Total Experience: 2 years") {
		t.Errorf("overlapping jobs should double-count:\n%s", out.Content.Text)
	}
}

func TestExperienceSortedDescending(t *testing.T) {
	r := NewRegistry()
	older := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := dataContext(t, &portfolio.Data{
		Experiences: []portfolio.Section{
			experienceSection(t, "Old Job", "Acme", older, &newer),
			experienceSection(t, "New Job", "Initech", newer, nil),
		},
	})

	out := r.Execute(Parse("experience"), ctx)
	text := out.Content.Text
	if strings.Index(text, "New Job") > strings.Index(text, "Old Job") {
		t.Errorf("most recent job should render first:\n%s", text)
	}
	if !strings.Contains(text, "Present") {
		t.Errorf("open-ended job should show Present:\n%s", text)
	}
}

func TestExperienceAliases(t *testing.T) {
	r := NewRegistry()
	ctx := testContext()
	for _, alias := range []string{"exp", "work"} {
		out := r.Execute(Parse(alias), ctx)
		if out.Content.Text != "No experience data available." {
			t.Errorf("%q did not resolve to experience: %+v", alias, out)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0 months"},
		{1, "1 month"},
		{11, "11 months"},
		{12, "1 year"},
		{24, "2 years"},
		{13, "1 year, 1 month"},
		{26, "2 years, 2 months"},
	}

	for _, tt := range tests {
		if got := formatMonths(tt.months); got != tt.want {
			t.Errorf("formatMonths(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

// =============================================================================
// PROJECTS
// =============================================================================

func projectSection(t *testing.T, title string, year int, featured bool) portfolio.Section {
	t.Helper()
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	return portfolio.Section{
		Type:       portfolio.TypeProject,
		Title:      title,
		Metadata:   mustJSON(t, portfolio.ProjectMetadata{TechStack: []string{"Go"}}),
		StartDate:  &start,
		IsFeatured: featured,
		IsVisible:  true,
	}
}

func TestProjectsFeaturedFilter(t *testing.T) {
	r := NewRegistry()
	ctx := dataContext(t, &portfolio.Data{
		Projects: []portfolio.Section{
			projectSection(t, "Alpha", 2022, true),
			projectSection(t, "Beta", 2023, false),
		},
	})

	out := r.Execute(Parse("projects --featured"), ctx)
	text := out.Content.Text
	if !strings.Contains(text, "Featured Projects") {
		t.Errorf("missing featured title:\n%s", text)
	}
	if !strings.Contains(text, "Alpha") || strings.Contains(text, "Beta") {
		t.Errorf("featured filter wrong:\n%s", text)
	}
	if !strings.Contains(text, "Showing 1 of 2 projects") {
		t.Errorf("missing count line:\n%s", text)
	}
}

func TestProjectsSortedByYearDescending(t *testing.T) {
	r := NewRegistry()
	ctx := dataContext(t, &portfolio.Data{
		Projects: []portfolio.Section{
			projectSection(t, "Older", 2021, false),
			projectSection(t, "Newer", 2024, false),
		},
	})

	out := r.Execute(Parse("projects"), ctx)
	text := out.Content.Text
	if strings.Index(text, "Newer") > strings.Index(text, "Older") {
		t.Errorf("newest project should render first:\n%s", text)
	}
}

func TestProjectsYearFallsBackToCurrentYear(t *testing.T) {
	r := NewRegistry()
	ctx := dataContext(t, &portfolio.Data{
		Projects: []portfolio.Section{
			{
				Type:      portfolio.TypeProject,
				Title:     "Undated",
				Metadata:  mustJSON(t, portfolio.ProjectMetadata{TechStack: []string{"Go"}}),
				IsVisible: true,
			},
		},
	})

	out := r.Execute(Parse("projects"), ctx)
	// testContext pins now to 2025.
	if !strings.Contains(out.Content.Text, "(2025)") {
		t.Errorf("undated project should use current year:\n%s", out.Content.Text)
	}
}

// =============================================================================
// THEME
// =============================================================================

func TestThemeRoundTrip(t *testing.T) {
	r := NewRegistry()
	ctx := testContext()

	out := r.Execute(Parse("theme cyberpunk"), ctx)
	if !out.Success {
		t.Fatalf("theme cyberpunk failed: %+v", out)
	}

	out = r.Execute(Parse("theme"), ctx)
	if !strings.Contains(out.Content.Text, "Current theme: cyberpunk") {
		t.Errorf("theme listing should report cyberpunk:\n%s", out.Content.Text)
	}

	// Unknown theme fails and leaves state unchanged.
	out = r.Execute(Parse("theme doesnotexist"), ctx)
	if out.Success {
		t.Error("unknown theme should fail")
	}
	if !strings.Contains(out.Content.Text, "Available themes:") {
		t.Errorf("failure should list valid names:\n%s", out.Content.Text)
	}
	if ctx.Theme.Active().Name != "cyberpunk" {
		t.Errorf("failed set changed theme to %q", ctx.Theme.Active().Name)
	}
}

func TestThemeAliases(t *testing.T) {
	r := NewRegistry()
	ctx := testContext()

	for _, alias := range []string{"color", "colors"} {
		out := r.Execute(Parse(alias+" matrix"), ctx)
		if !out.Success {
			t.Errorf("%q alias failed: %+v", alias, out)
		}
	}
}

// =============================================================================
// CLEAR / HISTORY / STATS
// =============================================================================

func TestClearReturnsClearAction(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"clear", "cls"} {
		out := r.Execute(Parse(name), testContext())
		if !out.Success || out.Action != ActionClear {
			t.Errorf("%q = %+v, want ActionClear", name, out)
		}
	}
}

func TestHistoryHandler(t *testing.T) {
	r := NewRegistry()
	ctx := testContext()

	out := r.Execute(Parse("history"), ctx)
	if !strings.Contains(out.Content.Text, "No command history yet") {
		t.Errorf("empty history output wrong: %q", out.Content.Text)
	}

	ctx.History.Add("help")
	ctx.History.Add("skills --frontend")

	out = r.Execute(Parse("history"), ctx)
	text := out.Content.Text
	if !strings.Contains(text, "1  help") || !strings.Contains(text, "2  skills --frontend") {
		t.Errorf("history listing wrong:\n%s", text)
	}
	if !strings.Contains(text, "Total Commands: 2") {
		t.Errorf("missing total:\n%s", text)
	}
}

func TestStatsPlaceholdersWithoutData(t *testing.T) {
	r := NewRegistry()
	out := r.Execute(Parse("stats"), testContext())
	text := out.Content.Text

	if !strings.Contains(text, "~150,000") {
		t.Errorf("missing lines-of-code placeholder:\n%s", text)
	}
	if !strings.Contains(text, "2,847 cups") {
		t.Errorf("missing coffee placeholder:\n%s", text)
	}
	if !strings.Contains(text, "Skills: 0") {
		t.Errorf("content counts should be zero without data:\n%s", text)
	}
}

func TestStatsCountsFromSnapshot(t *testing.T) {
	r := NewRegistry()
	start := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	ctx := dataContext(t, &portfolio.Data{
		Skills: []portfolio.Section{
			skillSection(t, "React", "frontend", 80),
			skillSection(t, "Go", "backend", 85),
		},
		Projects: []portfolio.Section{
			projectSection(t, "Alpha", 2022, true),
		},
		Experiences: []portfolio.Section{
			// Pinned now is 2025-06-15: exactly 24 months.
			experienceSection(t, "Engineer", "Acme", start, nil),
		},
	})

	out := r.Execute(Parse("stats"), ctx)
	text := out.Content.Text

	if !strings.Contains(text, "Skills: 2") {
		t.Errorf("skill count wrong:\n%s", text)
	}
	if !strings.Contains(text, "Featured Projects: 1") {
		t.Errorf("featured count wrong:\n%s", text)
	}
	if !strings.Contains(text, "Frontend: 1 skills") || !strings.Contains(text, "Backend: 1 skills") {
		t.Errorf("category breakdown wrong:\n%s", text)
	}
	if !strings.Contains(text, "Total Experience: 2+ years") {
		t.Errorf("experience years wrong:\n%s", text)
	}
}

// =============================================================================
// CONTACT / RESUME
// =============================================================================

func TestContactReturnsForm(t *testing.T) {
	r := NewRegistry()
	ctx := dataContext(t, &portfolio.Data{
		ContactInfo: portfolio.ContactInfo{
			Email:   "hello@example.com",
			Socials: map[string]string{"github": "https://github.com/example"},
		},
	})

	out := r.Execute(Parse("contact"), ctx)
	if !out.Success || out.Content.Kind != KindForm {
		t.Fatalf("contact = %+v, want KindForm", out)
	}
	if out.Content.Form == nil || len(out.Content.Form.Fields) != 3 {
		t.Fatalf("form spec wrong: %+v", out.Content.Form)
	}
	if !strings.Contains(out.Content.Text, "hello@example.com") {
		t.Errorf("missing contact info:\n%s", out.Content.Text)
	}
}

func TestSubmitContact(t *testing.T) {
	ec := testContext()

	// No channel configured.
	res := SubmitContact(context.Background(), ec, contact.FormData{})
	if res.Success {
		t.Error("submission without channel should fail")
	}

	var got contact.FormData
	ec.Submit = func(ctx context.Context, data contact.FormData) contact.Result {
		got = data
		return contact.Result{Success: true, Message: "sent"}
	}

	want := contact.FormData{Name: "Ada", Email: "ada@example.com", Message: "hi"}
	res = SubmitContact(context.Background(), ec, want)
	if !res.Success || got != want {
		t.Errorf("SubmitContact = %+v, forwarded %+v", res, got)
	}
}

func TestResumeReturnsDownload(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"resume", "cv"} {
		out := r.Execute(Parse(name), testContext())
		if !out.Success || out.Content.Kind != KindDownload {
			t.Fatalf("%q = %+v, want KindDownload", name, out)
		}
		if out.Content.Download.Filename != "Hassan_Kazmi_Resume.pdf" {
			t.Errorf("filename = %q", out.Content.Download.Filename)
		}
	}
}
