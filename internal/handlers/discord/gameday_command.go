package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gameday/internal/log"
	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/services/game"
	"github.com/KirkDiggler/gameday/internal/services/messaging"
	"github.com/KirkDiggler/gameday/internal/services/supporter"
)

const (
	commandTimeout = 5 * time.Second
	boardSize      = 10
)

// Subcommands of /gameday
const (
	subStatus      = "status"
	subUndo        = "undo"
	subSeason      = "season"
	subPace        = "pace"
	subCheer       = "cheer"
	subBoard       = "board"
	subResetDay    = "reset-day"
	subResetSeason = "reset-season"
)

// Request is an interaction reduced to what the command needs
type Request struct {
	UserID   string
	Username string

	// Subcommand is set for slash commands, CustomID for button clicks
	Subcommand string
	CustomID   string

	Amount   int
	Category string
	Name     string
	Message  string
	TargetID string
}

// GamedayCommand handles the /gameday command and its buttons
type GamedayCommand struct {
	BaseCommand
	gameService      game.Service
	supporterService supporter.Service
	messagingService messaging.Service
	categories       models.Categories
	goalPoints       int
	isAdmin          func(userID string) bool
}

// GamedayCommandConfig holds the command's dependencies
type GamedayCommandConfig struct {
	GameService      game.Service
	SupporterService supporter.Service
	MessagingService messaging.Service
	Categories       models.Categories

	// GoalBonusPoints is shown in goal announcements, defaults to 7
	GoalBonusPoints int

	// IsAdmin decides who may run the resets, nil allows nobody
	IsAdmin func(userID string) bool
}

// NewGamedayCommand creates a new gameday command handler
func NewGamedayCommand(cfg *GamedayCommandConfig) (*GamedayCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.SupporterService == nil {
		return nil, errors.New("supporter service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if len(cfg.Categories) == 0 {
		return nil, errors.New("categories cannot be empty")
	}

	isAdmin := cfg.IsAdmin
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}

	goalPoints := cfg.GoalBonusPoints
	if goalPoints <= 0 {
		goalPoints = 7
	}

	return &GamedayCommand{
		BaseCommand: BaseCommand{
			Name:        "gameday",
			Description: "Game day nutrition tracker",
			Options:     commandOptions(cfg.Categories),
		},
		gameService:      cfg.GameService,
		supporterService: cfg.SupporterService,
		messagingService: cfg.MessagingService,
		categories:       cfg.Categories,
		goalPoints:       goalPoints,
		isAdmin:          isAdmin,
	}, nil
}

func commandOptions(categories models.Categories) []*discordgo.ApplicationCommandOption {
	minAmount := 1.0
	playerOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "player",
		Description: "Whose game day, defaults to you",
	}

	categoryChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(categories))
	options := []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subStatus, Description: "Show the scoreboard", Options: []*discordgo.ApplicationCommandOption{playerOption}},
	}

	for _, c := range categories {
		categoryChoices = append(categoryChoices, &discordgo.ApplicationCommandOptionChoice{Name: c.Title, Value: string(c.Category)})
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        string(c.Category),
			Description: fmt.Sprintf("Log %s and run a play", strings.ToLower(c.Title)),
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: fmt.Sprintf("Amount in %s, defaults to %d", c.Unit, c.Increment),
				MinValue:    &minAmount,
			}},
		})
	}

	return append(options,
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subUndo,
			Description: "Remove over-logged intake",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "category", Description: "What to remove", Required: true, Choices: categoryChoices},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Amount to remove, defaults to one step", MinValue: &minAmount},
			},
		},
		&discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subSeason, Description: "Show the season record", Options: []*discordgo.ApplicationCommandOption{playerOption}},
		&discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subPace, Description: "How today is going against the clock"},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subCheer,
			Description: "Leave a message on the supporter board",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "message", Description: "Your cheer", Required: true, MaxLength: supporter.MaxMessageLength},
				{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Sign as, defaults to your name", MaxLength: supporter.MaxNameLength},
			},
		},
		&discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subBoard, Description: "Read the supporter board"},
		&discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subResetDay, Description: "Admin: wipe today's game", Options: []*discordgo.ApplicationCommandOption{playerOption}},
		&discordgo.ApplicationCommandOption{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subResetSeason, Description: "Admin: wipe the season", Options: []*discordgo.ApplicationCommandOption{playerOption}},
	)
}

// Handle processes a Discord interaction for the gameday command
func (c *GamedayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	req := commandRequest(i)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	return s.InteractionRespond(i.Interaction, c.Respond(ctx, req))
}

// OwnsComponent reports whether a custom ID belongs to this command
func (c *GamedayCommand) OwnsComponent(customID string) bool {
	return strings.HasPrefix(customID, buttonQuickAdd) ||
		strings.HasPrefix(customID, buttonConfirm) ||
		customID == buttonCancel
}

// HandleComponent processes a gameday button click
func (c *GamedayCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	req := componentRequest(i)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	return s.InteractionRespond(i.Interaction, c.RespondComponent(ctx, req))
}

// Respond builds the reply to a slash command
func (c *GamedayCommand) Respond(ctx context.Context, req *Request) *discordgo.InteractionResponse {
	if _, ok := c.categories.Lookup(models.Category(req.Subcommand)); ok {
		return c.logIntake(ctx, req.UserID, req.Username, models.Category(req.Subcommand), req.Amount)
	}

	switch req.Subcommand {
	case subStatus:
		return c.status(ctx, req)
	case subUndo:
		return c.undo(ctx, req)
	case subSeason:
		return c.season(ctx, req)
	case subPace:
		return c.pace(ctx, req)
	case subCheer:
		return c.cheer(ctx, req)
	case subBoard:
		return c.board(ctx)
	case subResetDay:
		return c.confirmReset(ctx, req, actionResetDay)
	case subResetSeason:
		return c.confirmReset(ctx, req, actionResetSeason)
	default:
		return errorResponse("Unknown play call", fmt.Sprintf("Unknown subcommand %q", req.Subcommand))
	}
}

// RespondComponent builds the reply to a button click
func (c *GamedayCommand) RespondComponent(ctx context.Context, req *Request) *discordgo.InteractionResponse {
	switch {
	case strings.HasPrefix(req.CustomID, buttonQuickAdd):
		category, amount, ok := parseQuickAdd(strings.TrimPrefix(req.CustomID, buttonQuickAdd))
		if !ok {
			return errorResponse("Unknown button", "That button is out of date.")
		}
		return c.logIntake(ctx, req.UserID, req.Username, category, amount)

	case strings.HasPrefix(req.CustomID, buttonConfirm):
		action, playerID, ok := strings.Cut(strings.TrimPrefix(req.CustomID, buttonConfirm), ":")
		if !ok || playerID == "" {
			return errorResponse("Unknown button", "That button is out of date.")
		}
		return c.reset(ctx, req.UserID, action, playerID)

	case req.CustomID == buttonCancel:
		return updateResponse(&discordgo.MessageEmbed{Title: "Cancelled", Description: "Nothing was reset.", Color: colorField})

	default:
		return errorResponse("Unknown button", fmt.Sprintf("Unknown button: %s", req.CustomID))
	}
}

func parseQuickAdd(raw string) (models.Category, int, bool) {
	rawCategory, rawAmount, ok := strings.Cut(raw, ":")
	if !ok {
		return "", 0, false
	}

	amount, err := strconv.Atoi(rawAmount)
	if err != nil || amount <= 0 {
		return "", 0, false
	}

	return models.Category(rawCategory), amount, true
}

// target returns the player a command is about, defaulting to the caller
func target(req *Request) (string, string) {
	if req.TargetID != "" && req.TargetID != req.UserID {
		return req.TargetID, fmt.Sprintf("<@%s>", req.TargetID)
	}
	return req.UserID, req.Username
}

func (c *GamedayCommand) status(ctx context.Context, req *Request) *discordgo.InteractionResponse {
	playerID, name := target(req)

	output, err := c.gameService.GetGameDay(ctx, &game.GetGameDayInput{PlayerID: playerID})
	if err != nil {
		return c.serviceError(ctx, err)
	}

	line := c.paceLine(ctx, output.Pace)

	var buttons []discordgo.MessageComponent
	if playerID == req.UserID {
		buttons = quickAddButtons(c.categories)
	}

	return embedResponse(renderGameDay(name, output, c.categories, line), buttons, false)
}

func (c *GamedayCommand) logIntake(ctx context.Context, userID, username string, category models.Category, amount int) *discordgo.InteractionResponse {
	cfg, ok := c.categories.Lookup(category)
	if !ok {
		return errorResponse("Unknown category", fmt.Sprintf("%q is not tracked", category))
	}
	if amount == 0 {
		amount = cfg.Increment
	}

	output, err := c.gameService.LogIntake(ctx, &game.LogIntakeInput{
		PlayerID: userID,
		Category: category,
		Amount:   amount,
	})
	if err != nil {
		return c.serviceError(ctx, err)
	}

	title := fmt.Sprintf("+%.1f yards", output.Play.YardsGained)
	message := ""
	playMsg, err := c.messagingService.GetPlayMessage(ctx, &messaging.GetPlayMessageInput{Play: output.Play, CategoryTitle: cfg.Title})
	if err == nil {
		title = playMsg.Title
		message = playMsg.Message
	}

	goalLines := make([]string, 0, len(output.GoalsAwarded))
	for _, awarded := range output.GoalsAwarded {
		awardedCfg, _ := c.categories.Lookup(awarded)
		goalMsg, err := c.messagingService.GetGoalMessage(ctx, &messaging.GetGoalMessageInput{
			Category:      awarded,
			CategoryTitle: awardedCfg.Title,
			Points:        c.goalPoints,
		})
		if err != nil {
			continue
		}
		goalLines = append(goalLines, fmt.Sprintf("**%s** %s", goalMsg.Title, goalMsg.Message))
	}

	return embedResponse(renderPlay(username, title, message, goalLines, output, c.categories), quickAddButtons(c.categories), false)
}

func (c *GamedayCommand) undo(ctx context.Context, req *Request) *discordgo.InteractionResponse {
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return errorResponse("Unknown category", fmt.Sprintf("%q is not tracked", req.Category))
	}

	output, err := c.gameService.RemoveIntake(ctx, &game.RemoveIntakeInput{
		PlayerID: req.UserID,
		Category: category,
		Amount:   req.Amount,
	})
	if err != nil {
		return c.serviceError(ctx, err)
	}

	cfg, _ := c.categories.Lookup(category)
	description := fmt.Sprintf("Removed %d %s of %s.", output.Removed, cfg.Unit, strings.ToLower(cfg.Title))
	if output.Removed == 0 {
		description = fmt.Sprintf("Nothing logged for %s yet.", strings.ToLower(cfg.Title))
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       "↩️ Correction",
		Description: description,
		Color:       colorField,
		Fields:      scoreboardFields(output.State, c.categories),
	}, nil, true)
}

func (c *GamedayCommand) season(ctx context.Context, req *Request) *discordgo.InteractionResponse {
	playerID, name := target(req)

	output, err := c.gameService.GetSeason(ctx, &game.GetSeasonInput{PlayerID: playerID})
	if err != nil {
		return c.serviceError(ctx, err)
	}

	line := ""
	seasonMsg, err := c.messagingService.GetSeasonMessage(ctx, &messaging.GetSeasonMessageInput{
		Standing:  output.Summary.Standing,
		WinStreak: output.Summary.WinStreak,
	})
	if err == nil {
		line = seasonMsg.Message
	}

	return embedResponse(renderSeason(name, output, line), nil, false)
}

func (c *GamedayCommand) pace(ctx context.Context, req *Request) *discordgo.InteractionResponse {
	output, err := c.gameService.GetPace(ctx, &game.GetPaceInput{PlayerID: req.UserID})
	if err != nil {
		return c.serviceError(ctx, err)
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:  "⏱️ Pace",
		Color:  colorField,
		Fields: []*discordgo.MessageEmbedField{paceField(output.Pace, c.paceLine(ctx, output.Pace))},
	}, nil, true)
}

func (c *GamedayCommand) paceLine(ctx context.Context, pace *game.PaceReport) string {
	output, err := c.messagingService.GetPaceMessage(ctx, &messaging.GetPaceMessageInput{Classification: pace.Status.Classification})
	if err != nil {
		return ""
	}
	return output.Message
}

func (c *GamedayCommand) cheer(ctx context.Context, req *Request) *discordgo.InteractionResponse {
	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = req.Username
	}

	output, err := c.supporterService.PostMessage(ctx, &supporter.PostMessageInput{
		Name:     name,
		Message:  req.Message,
		AuthorID: req.UserID,
	})
	if err != nil {
		return c.serviceError(ctx, err)
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       "📣 New cheer!",
		Description: output.Message.Message,
		Color:       colorGold,
		Footer:      &discordgo.MessageEmbedFooter{Text: "from " + output.Message.Name},
	}, nil, false)
}

func (c *GamedayCommand) board(ctx context.Context) *discordgo.InteractionResponse {
	output, err := c.supporterService.ListMessages(ctx, &supporter.ListMessagesInput{Limit: boardSize})
	if err != nil {
		return c.serviceError(ctx, err)
	}

	return embedResponse(renderBoard(output.Messages), nil, false)
}

func (c *GamedayCommand) confirmReset(ctx context.Context, req *Request, action string) *discordgo.InteractionResponse {
	if !c.isAdmin(req.UserID) {
		return c.typedError(ctx, messaging.ErrorTypeNotAllowed)
	}

	playerID, name := target(req)
	what := "today's game"
	if action == actionResetSeason {
		what = "the whole season"
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       "⚠️ Are you sure?",
		Description: fmt.Sprintf("This wipes %s for %s. It cannot be undone.", what, name),
		Color:       colorWarning,
	}, confirmButtons(action, playerID), true)
}

func (c *GamedayCommand) reset(ctx context.Context, userID, action, playerID string) *discordgo.InteractionResponse {
	if !c.isAdmin(userID) {
		return c.typedError(ctx, messaging.ErrorTypeNotAllowed)
	}

	var err error
	var description string
	switch action {
	case actionResetDay:
		_, err = c.gameService.ResetDay(ctx, &game.ResetDayInput{PlayerID: playerID})
		description = "Today's game is back to kickoff."
	case actionResetSeason:
		_, err = c.gameService.ResetSeason(ctx, &game.ResetSeasonInput{PlayerID: playerID})
		description = "The season record is wiped clean."
	default:
		return errorResponse("Unknown button", "That button is out of date.")
	}
	if err != nil {
		return c.serviceError(ctx, err)
	}

	log.Info("Reset confirmed from Discord",
		zap.String("admin_id", userID),
		zap.String("player_id", playerID),
		zap.String("action", action),
	)

	return updateResponse(&discordgo.MessageEmbed{Title: "Reset complete", Description: description, Color: colorField})
}

// serviceError turns a service error into an ephemeral reply
func (c *GamedayCommand) serviceError(ctx context.Context, err error) *discordgo.InteractionResponse {
	var errorType messaging.ErrorType
	var supporterErr supporter.SupporterError

	switch {
	case errors.Is(err, game.ErrPlayInProgress):
		errorType = messaging.ErrorTypePlayInProgress
	case errors.Is(err, game.ErrInvalidAmount):
		errorType = messaging.ErrorTypeInvalidAmount
	case errors.Is(err, game.ErrStoreUnavailable):
		errorType = messaging.ErrorTypeStoreUnavailable
	case errors.Is(err, supporter.ErrRateLimited):
		errorType = messaging.ErrorTypeRateLimited
	case errors.As(err, &supporterErr):
		return errorResponse("Can't post that", supporterErr.Error())
	default:
		log.Error("Discord command failed", zap.Error(err))
	}

	return c.typedError(ctx, errorType)
}

func (c *GamedayCommand) typedError(ctx context.Context, errorType messaging.ErrorType) *discordgo.InteractionResponse {
	output, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if err != nil {
		return errorResponse("Error", "Something went wrong, please try again.")
	}
	return errorResponse(output.Title, output.Message)
}

// interactionUser returns the caller's ID and display name in guilds and DMs
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.User.Username
		if i.Member.Nick != "" {
			name = i.Member.Nick
		}
		return i.Member.User.ID, name
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

func commandRequest(i *discordgo.InteractionCreate) *Request {
	userID, username := interactionUser(i)
	sub := i.ApplicationCommandData().Options[0]

	req := &Request{
		UserID:     userID,
		Username:   username,
		Subcommand: sub.Name,
	}

	for _, opt := range sub.Options {
		switch opt.Name {
		case "amount":
			req.Amount = int(opt.IntValue())
		case "category":
			req.Category = opt.StringValue()
		case "name":
			req.Name = opt.StringValue()
		case "message":
			req.Message = opt.StringValue()
		case "player":
			req.TargetID = opt.UserValue(nil).ID
		}
	}

	return req
}

func componentRequest(i *discordgo.InteractionCreate) *Request {
	userID, username := interactionUser(i)
	return &Request{
		UserID:   userID,
		Username: username,
		CustomID: i.MessageComponentData().CustomID,
	}
}
