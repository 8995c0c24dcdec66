package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-insight-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// fitText shortens v to at most max runes.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// tail keeps the last max runes of v, for long live transcripts.
func tail(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	return "..." + string(r[len(r)-max:])
}

var sparkBars = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values in [lo, hi] as a row of bar glyphs.
func sparkline(values []int, lo, hi int) string {
	if len(values) == 0 || hi <= lo {
		return ""
	}

	out := make([]rune, len(values))
	span := hi - lo
	for i, v := range values {
		v = min(max(v, lo), hi)
		out[i] = sparkBars[(v-lo)*(len(sparkBars)-1)/span]
	}
	return string(out)
}

func sentimentScore(s models.Sentiment) int {
	switch s {
	case models.Positive:
		return 4
	case models.Neutral:
		return 3
	case models.Tense:
		return 2
	case models.Negative:
		return 1
	}
	return 3
}

func energyScore(e models.EnergyLevel) int {
	switch e {
	case models.EnergyHigh:
		return 3
	case models.EnergyMedium:
		return 2
	case models.EnergyLow:
		return 1
	}
	return 2
}

// renderMetaTrend draws the sentiment and energy history of a capture.
func renderMetaTrend(history []models.MetaSnapshot) string {
	if len(history) == 0 {
		return ""
	}

	sentiments := make([]int, len(history))
	energies := make([]int, len(history))
	for i, snap := range history {
		sentiments[i] = sentimentScore(snap.Meta.SentimentOverall)
		energies[i] = energyScore(snap.Meta.Energy)
	}

	return fmt.Sprintf("sentiment %s\nenergy    %s", sparkline(sentiments, 1, 4), sparkline(energies, 1, 3))
}

func renderMeta(meta *models.MetaAnalysis) string {
	if meta == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mood: %s · energy %s\n", meta.SentimentOverall, meta.Energy)
	if meta.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", meta.Summary)
	}
	if meta.Nudge != "" {
		fmt.Fprintf(&b, "Nudge: %s\n", meta.Nudge)
	}
	for _, p := range meta.LanguagePatterns {
		fmt.Fprintf(&b, "  “%s”: %s\n", p.Label, p.Meaning)
	}
	for _, a := range meta.Actions {
		fmt.Fprintf(&b, "  [%s] %s\n", a.Kind, a.Text)
	}

	return strings.TrimRight(b.String(), "\n")
}

func strengthDots(strength int) string {
	strength = min(max(strength, 0), models.MaxStrength)
	return strings.Repeat("●", strength) + strings.Repeat("○", models.MaxStrength-strength)
}

func renderBlock(block models.InsightBlock) string {
	var b strings.Builder

	label := strings.ToUpper(string(block.Type))
	if color, ok := typeColors[block.Type]; ok {
		label = titleStyle.Foreground(color).Render(label)
	}
	fmt.Fprintf(&b, "%s %s  %s\n", label, strengthDots(block.Strength), titleStyle.Render(block.Title))
	b.WriteString(block.Summary)
	if block.Quote != "" {
		fmt.Fprintf(&b, "\n“%s”", block.Quote)
	}
	for _, q := range block.Questions {
		fmt.Fprintf(&b, "\n? %s", q)
	}
	for _, insp := range block.Inspirations {
		fmt.Fprintf(&b, "\n~ %s: “%s”", insp.Author, insp.Quote)
	}

	return cardStyle.Render(b.String())
}

func renderBlocks(blocks []models.InsightBlock) string {
	if len(blocks) == 0 {
		return helpStyle.Render("No insights yet.")
	}

	cards := make([]string, len(blocks))
	for i, block := range blocks {
		cards[i] = renderBlock(block)
	}
	return strings.Join(cards, "\n")
}

func formatCountdown(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func formatUsage(u models.Usage) string {
	return fmt.Sprintf("%d/%d analyses today", u.Used, u.Limit)
}
