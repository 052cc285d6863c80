// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

// registerBuiltins wires up the full command surface. Registration order is
// visible behavior: help listing, autocomplete, and suggestion order all
// follow it.
func (r *Registry) registerBuiltins() {
	r.Register(&Command{
		Name:        "help",
		Aliases:     []string{"?", "h"},
		Description: "Display list of available commands",
		Usage:       "help",
		Handler:     handleHelp,
	})

	r.Register(&Command{
		Name:        "about",
		Description: "Display biographical information",
		Usage:       "about",
		Handler:     handleAbout,
	})

	r.Register(&Command{
		Name:        "skills",
		Description: "Display skills, optionally filtered by category",
		Usage:       "skills [--frontend|--backend|--tools]",
		Handler:     handleSkills,
	})

	r.Register(&Command{
		Name:        "experience",
		Aliases:     []string{"exp", "work"},
		Description: "Display work history in chronological order",
		Usage:       "experience",
		Handler:     handleExperience,
	})

	r.Register(&Command{
		Name:        "projects",
		Description: "Display projects, optionally show only featured",
		Usage:       "projects [--featured]",
		Handler:     handleProjects,
	})

	r.Register(&Command{
		Name:        "certifications",
		Aliases:     []string{"certs", "certificates"},
		Description: "Display certifications and achievements",
		Usage:       "certifications",
		Handler:     handleCertifications,
	})

	r.Register(&Command{
		Name:        "contact",
		Description: "Display contact information and form",
		Usage:       "contact",
		Handler:     handleContact,
	})

	r.Register(&Command{
		Name:        "resume",
		Aliases:     []string{"cv"},
		Description: "Download resume as PDF",
		Usage:       "resume",
		Handler:     handleResume,
	})

	r.Register(&Command{
		Name:        "clear",
		Aliases:     []string{"cls"},
		Description: "Clear terminal output",
		Usage:       "clear",
		Handler:     handleClear,
	})

	r.Register(&Command{
		Name:        "history",
		Description: "Show command history",
		Usage:       "history",
		Handler:     handleHistory,
	})

	r.Register(&Command{
		Name:        "stats",
		Aliases:     []string{"statistics"},
		Description: "Display portfolio statistics",
		Usage:       "stats",
		Handler:     handleStats,
	})

	r.Register(&Command{
		Name:        "theme",
		Aliases:     []string{"color", "colors"},
		Description: "Change terminal color theme",
		Usage:       "theme [theme-name] - Available themes: default, cyberpunk, matrix, dracula",
		Handler:     handleTheme,
	})

	r.Register(&Command{
		Name:        "github",
		Description: "Open the GitHub profile",
		Usage:       "github",
		Handler:     socialHandler("github", "Check out my repositories and contributions!"),
	})

	r.Register(&Command{
		Name:        "linkedin",
		Description: "Open the LinkedIn profile",
		Usage:       "linkedin",
		Handler:     socialHandler("linkedin", "Let's connect professionally!"),
	})

	r.Register(&Command{
		Name:        "instagram",
		Aliases:     []string{"insta"},
		Description: "Open the Instagram profile",
		Usage:       "instagram",
		Handler:     socialHandler("instagram", "Follow for updates and photos!"),
	})

	r.Register(&Command{
		Name:        "hello",
		Description: "Say hello!",
		Usage:       "hello",
		Handler:     handleHello,
	})

	r.Register(&Command{
		Name:        "bye",
		Description: "Say goodbye!",
		Usage:       "bye",
		Handler:     handleBye,
	})

	// Hidden easter eggs: dispatchable but excluded from help,
	// autocomplete, and suggestions.
	r.Register(&Command{
		Name:        "tatakae",
		Description: "???",
		Usage:       "tatakae",
		Hidden:      true,
		Handler:     handleTatakae,
	})

	r.Register(&Command{
		Name:        "gear5",
		Description: "???",
		Usage:       "gear5",
		Hidden:      true,
		Handler:     handleGear5,
	})

	r.Register(&Command{
		Name:        "bankai",
		Description: "???",
		Usage:       "bankai",
		Hidden:      true,
		Handler:     handleBankai,
	})

	r.Register(&Command{
		Name:        "maki-zenin",
		Description: "???",
		Usage:       "maki-zenin",
		Hidden:      true,
		Handler:     handleMakiZenin,
	})
}
