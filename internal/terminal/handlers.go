// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import (
	"fmt"
	"strings"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

// =============================================================================
// HELP
// =============================================================================

const helpText = `
Available Commands:

  help, ?, h              Display this help message
  about                   Display biographical information
  skills [--frontend|--backend|--tools]
                          Display skills, optionally filtered by category
  experience              Display work history in chronological order
  projects [--featured]   Display projects, optionally show only featured
  certifications          Display certifications and achievements
  contact                 Display contact information
  resume                  Download resume as PDF
  clear                   Clear terminal output
  history                 Show command history
  stats                   Display portfolio statistics
  theme [name]            Change terminal theme (default, cyberpunk, matrix, dracula)
  github, linkedin, instagram
                          Open social profiles

Tips:
  - Use Tab for command autocomplete
  - Use Up/Down arrows to navigate command history
  - Use flags like --frontend to filter results

Examples:
  skills --frontend       Show only frontend skills
  projects --featured     Show only featured projects
  theme cyberpunk         Switch to cyberpunk theme
`

func handleHelp(ctx *Context, args []string, flags Flags) (Output, error) {
	return Text(helpText), nil
}

// =============================================================================
// ABOUT
// =============================================================================

const aboutFallback = `
I'm a passionate full-stack developer with a love for building elegant,
performant, and user-friendly applications. My journey in software
development has been driven by curiosity and a desire to solve real-world
problems through code.`

func handleAbout(ctx *Context, args []string, flags Flags) (Output, error) {
	bio := aboutFallback
	if ctx.Data != nil && ctx.Data.About != "" {
		bio = ctx.Data.About
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(banner("ABOUT HASSAN"))
	b.WriteString("\n\nHello! I'm Hassan\n\n")
	b.WriteString(bio)
	b.WriteString(`

Let's Connect:
   Type 'contact' to get in touch or 'resume' to download my CV.
   Type 'skills' to see my technical expertise.
   Type 'experience' to view my work history.
   Type 'projects' to explore what I've built.
`)

	return Text(b.String()), nil
}

// banner renders a box-drawn title bar.
func banner(title string) string {
	const width = 59
	pad := (width - len(title)) / 2
	line := strings.Repeat("═", width)
	return fmt.Sprintf("╔%s╗\n║%s%s%s║\n╚%s╝",
		line,
		strings.Repeat(" ", pad), title, strings.Repeat(" ", width-pad-len(title)),
		line)
}

// =============================================================================
// CLEAR / HISTORY
// =============================================================================

func handleClear(ctx *Context, args []string, flags Flags) (Output, error) {
	// The interpreter holds no log state; the caller erases its own log.
	return Clear(), nil
}

func handleHistory(ctx *Context, args []string, flags Flags) (Output, error) {
	entries := ctx.History.Entries()
	if len(entries) == 0 {
		return Text("No command history yet. Start typing commands!"), nil
	}

	var b strings.Builder
	b.WriteString("\nCommand History\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	for i, cmd := range entries {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, cmd)
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 50))
	fmt.Fprintf(&b, "\nTotal Commands: %d\n", len(entries))
	b.WriteString("\nTip: Use Up/Down arrows to navigate through history\n")

	return Text(b.String()), nil
}

// =============================================================================
// THEME
// =============================================================================

func handleTheme(ctx *Context, args []string, flags Flags) (Output, error) {
	if len(args) == 0 {
		current := ctx.Theme.Active()

		var b strings.Builder
		fmt.Fprintf(&b, "Current theme: %s\n\nAvailable themes:\n", current.Name)
		for _, name := range theme.Names() {
			marker := ""
			if name == current.Name {
				marker = " (current)"
			}
			fmt.Fprintf(&b, "  • %s%s\n", name, marker)
		}
		b.WriteString("\nUsage: theme [theme-name]\n")

		return Text(b.String()), nil
	}

	name := strings.ToLower(args[0])
	if !ctx.Theme.Set(name) {
		available := strings.Join(theme.Names(), ", ")
		return Fail(
			fmt.Sprintf("Theme %q not found.\n\nAvailable themes: %s", name, available),
			fmt.Sprintf("Theme %q not found", name),
		), nil
	}

	return Textf("✓ Theme changed to %q\n\nEnjoy your new color scheme!", name), nil
}

// =============================================================================
// SOCIALS
// =============================================================================

var socialFallbacks = map[string]string{
	"github":    "https://github.com/sm-Hassan-Kazmi",
	"linkedin":  "https://linkedin.com/in/sm-hassan-kazmi",
	"instagram": "https://instagram.com/hassankazmi.dev",
}

// socialHandler builds a handler that prints the profile link for one social
// network, preferring the URL from the portfolio snapshot.
func socialHandler(network, tagline string) func(*Context, []string, Flags) (Output, error) {
	return func(ctx *Context, args []string, flags Flags) (Output, error) {
		url := socialFallbacks[network]
		if ctx.Data != nil {
			if u, ok := ctx.Data.ContactInfo.Socials[network]; ok && u != "" {
				url = u
			}
		}

		display := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
		inner := len(display) + 6

		var b strings.Builder
		fmt.Fprintf(&b, "\nOpening %s profile...\n\n", capitalize(network))
		fmt.Fprintf(&b, "   ╔%s╗\n", strings.Repeat("═", inner))
		fmt.Fprintf(&b, "   ║   %s   ║\n", display)
		fmt.Fprintf(&b, "   ╚%s╝\n", strings.Repeat("═", inner))
		fmt.Fprintf(&b, "\n   %s\n", tagline)

		return Text(b.String()), nil
	}
}

// =============================================================================
// GREETINGS
// =============================================================================

func handleHello(ctx *Context, args []string, flags Flags) (Output, error) {
	return Text("\n    👋 heyyyy! How can i help\n\n    Type 'help' to see available commands!\n"), nil
}

func handleBye(ctx *Context, args []string, flags Flags) (Output, error) {
	return Text("\n    👋 byeeee\n\n    Thanks for visiting! Come back soon! ✨\n"), nil
}

// =============================================================================
// EASTER EGGS
// =============================================================================

func handleTatakae(ctx *Context, args []string, flags Flags) (Output, error) {
	return Text(`
    ⚔️  TATAKAE! TATAKAE! ⚔️

    "If you win, you live.
     If you lose, you die.
     If you don't fight, you can't win!"

    - Eren Yeager, Attack on Titan

    🔥 Keep moving forward! 🔥

    Achievement Unlocked: "The Rumbling" 🎖️
`), nil
}

func handleGear5(ctx *Context, args []string, flags Flags) (Output, error) {
	return Text(`
    🌟 GEAR 5 ACTIVATED! 🌟

         ⚡ ☀️ ⚡
        ╔═══════════╗
        ║  SUN GOD  ║
        ║   NIKA    ║
        ╚═══════════╝
         ⚡ ☀️ ⚡

    "I'm the freest person in the world!"

    - Monkey D. Luffy, One Piece

    🏴‍☠️ The most ridiculous power! 🏴‍☠️

    Achievement Unlocked: "Joyboy Returns" 🎖️
`), nil
}

func handleBankai(ctx *Context, args []string, flags Flags) (Output, error) {
	return Text(`
    ⚡ BANKAI! ⚡

        ╔═══════════════╗
        ║   卍  解      ║
        ║   BANKAI      ║
        ╚═══════════════╝

    "Bankai: Tensa Zangetsu!"

    - Ichigo Kurosaki, Bleach

    ⚔️  Spiritual pressure intensifies... ⚔️

    Achievement Unlocked: "Soul Reaper" 🎖️
`), nil
}

func handleMakiZenin(ctx *Context, args []string, flags Flags) (Output, error) {
	return Text(`
    💚 heyyyy shorty

         ⚔️  ✨  ⚔️
        ╔═══════════╗
        ║ MAKI-Zenin║
        ╚═══════════╝
         ⚔️  ✨  ⚔️

    "I'll show you what a Zenin without cursed energy can do!"

    - Maki Zenin, Jujutsu Kaisen

    🔥 Heavenly Restriction Activated! 🔥

    Achievement Unlocked: "Zenin Clan Rebel" 🎖️
`), nil
}
