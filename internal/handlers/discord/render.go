package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/services/game"
)

// Button custom ID prefixes, the remainder carries the button's arguments
const (
	buttonQuickAdd = "gameday_add:"
	buttonConfirm  = "gameday_confirm:"
	buttonCancel   = "gameday_cancel"
)

const (
	actionResetDay    = "reset_day"
	actionResetSeason = "reset_season"
)

func categoryEmoji(category models.Category) string {
	switch category {
	case models.CategoryFluids:
		return "💧"
	case models.CategoryCalories:
		return "🍽️"
	case models.CategoryAntacid:
		return "🧂"
	default:
		return "🏈"
	}
}

// ballSpot describes a field position from the offense's view
func ballSpot(position float64) string {
	switch {
	case position == 50:
		return "Midfield"
	case position < 50:
		return fmt.Sprintf("Own %.0f", position)
	default:
		return fmt.Sprintf("Opp %.0f", 100-position)
	}
}

func downAndDistance(state *models.DailyGameState) string {
	return fmt.Sprintf("%s & %.1f", ordinal(state.Down), state.YardsToGo)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// progressBar draws ten blocks filled to fraction
func progressBar(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*10 + 0.5)
	return strings.Repeat("🟩", filled) + strings.Repeat("⬜", 10-filled)
}

// scoreboardFields renders the score, ball and per-category progress
func scoreboardFields(state *models.DailyGameState, categories models.Categories) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Score", Value: fmt.Sprintf("🏈 %d - %d", state.OffenseScore, state.DefenseScore), Inline: true},
		{Name: "Ball", Value: ballSpot(state.FieldPosition), Inline: true},
		{Name: "Down", Value: downAndDistance(state), Inline: true},
	}

	for _, c := range categories {
		amount := state.Intake[c.Category]
		fraction := 1.0
		if c.Goal > 0 {
			fraction = float64(amount) / float64(c.Goal)
		}

		value := fmt.Sprintf("%s %d / %d %s", progressBar(fraction), amount, c.Goal, c.Unit)
		if state.HasGoal(c.Category) {
			value += " ✅"
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", categoryEmoji(c.Category), c.Title),
			Value: value,
		})
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "Total Yards",
		Value:  fmt.Sprintf("%.1f", state.TotalYards),
		Inline: true,
	})

	return fields
}

// paceField renders the pace line
func paceField(pace *game.PaceReport, line string) *discordgo.MessageEmbedField {
	quarter := "Pregame"
	if pace.Quarter != nil {
		quarter = fmt.Sprintf("%s, %d min left", pace.Quarter.Label, int(pace.QuarterTimeRemaining.Minutes()))
	} else if pace.Expected >= 1 {
		quarter = "Final"
	}

	value := fmt.Sprintf("%s · %.0f%% done, %.0f%% expected", pace.Status.Message, pace.Actual*100, pace.Expected*100)
	if line != "" {
		value = fmt.Sprintf("%s\n%s", value, line)
	}

	return &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("Pace (%s)", quarter),
		Value: value,
	}
}

// quickAddButtons offers one increment per category
func quickAddButtons(categories models.Categories) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(categories))
	for _, c := range categories {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("+%d %s", c.Increment, c.Unit),
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("%s%s:%d", buttonQuickAdd, c.Category, c.Increment),
			Emoji:    &discordgo.ComponentEmoji{Name: categoryEmoji(c.Category)},
		})
	}
	return buttons
}

// confirmButtons asks an admin to confirm a destructive action on a player
func confirmButtons(action, playerID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Confirm",
			Style:    discordgo.DangerButton,
			CustomID: fmt.Sprintf("%s%s:%s", buttonConfirm, action, playerID),
		},
		discordgo.Button{
			Label:    "Cancel",
			Style:    discordgo.SecondaryButton,
			CustomID: buttonCancel,
		},
	}
}

func renderGameDay(username string, output *game.GetGameDayOutput, categories models.Categories, paceLine string) *discordgo.MessageEmbed {
	fields := scoreboardFields(output.State, categories)
	fields = append(fields, paceField(output.Pace, paceLine))

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏟️ %s's Game Day", username),
		Description: output.State.Date,
		Color:       colorField,
		Fields:      fields,
	}
}

func renderPlay(username, title, message string, goalLines []string, output *game.LogIntakeOutput, categories models.Categories) *discordgo.MessageEmbed {
	description := message
	if len(goalLines) > 0 {
		description = fmt.Sprintf("%s\n\n%s", description, strings.Join(goalLines, "\n"))
	}

	color := colorField
	if output.Play.IsTouchdown || len(goalLines) > 0 {
		color = colorGold
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields:      scoreboardFields(output.State, categories),
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s · %s", username, output.Pace.Status.Message)},
	}
}

func renderSeason(username string, output *game.GetSeasonOutput, line string) *discordgo.MessageEmbed {
	summary := output.Summary

	fields := []*discordgo.MessageEmbedField{
		{Name: "Record", Value: fmt.Sprintf("%d-%d", summary.Wins, summary.Losses), Inline: true},
		{Name: "Points", Value: fmt.Sprintf("%d for, %d against", summary.PointsFor, summary.PointsAgainst), Inline: true},
		{Name: "Win Streak", Value: fmt.Sprintf("%d", summary.WinStreak), Inline: true},
		{Name: "Season Yards", Value: fmt.Sprintf("%.1f", summary.TotalYards), Inline: true},
	}

	if len(summary.Recent) > 0 {
		lines := make([]string, 0, len(summary.Recent))
		for _, r := range summary.Recent {
			result := "W"
			if r.Winner == models.TeamDefense {
				result = "L"
			}
			lines = append(lines, fmt.Sprintf("`%s` %s %d-%d · %.1f yds", r.Date, result, r.OffenseScore, r.DefenseScore, r.TotalYards))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Last %d games", len(lines)),
			Value: strings.Join(lines, "\n"),
		})
	}

	color := colorField
	if summary.Standing == gameday.StandingLosing {
		color = colorWarning
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📅 %s's Season", username),
		Description: line,
		Color:       color,
		Fields:      fields,
	}
}

func renderBoard(messages []*models.SupporterMessage) *discordgo.MessageEmbed {
	if len(messages) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "📣 Supporter Board",
			Description: "No cheers yet. Be the first with `/gameday cheer`!",
			Color:       colorField,
		}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(messages))
	for _, m := range messages {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s · <t:%d:R>", m.Name, m.Timestamp.Unix()),
			Value: m.Message,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "📣 Supporter Board",
		Color:  colorField,
		Fields: fields,
	}
}
