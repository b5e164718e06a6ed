package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/domain/repositories"
	"ouibooking.backend/internal/domain/taxonomy"
	"ouibooking.backend/pkg/i18n"
)

// BotUsecase handles bot profile business logic. All reads and writes are
// scoped to the owning user unless the caller is an admin.
type BotUsecase struct {
	botRepo repositories.BotRepository
}

// NewBotUsecase creates a new bot usecase
func NewBotUsecase(botRepo repositories.BotRepository) *BotUsecase {
	return &BotUsecase{botRepo: botRepo}
}

// CreateBot creates a bot for ownerID with zeroed metrics
func (u *BotUsecase) CreateBot(ctx context.Context, ownerID uuid.UUID, input *entities.CreateBotInput) (*entities.Bot, error) {
	if !taxonomy.Valid(input.Industry) {
		return nil, domainerrors.ErrUnknownIndustry
	}
	languages, err := normalizeLanguages(input.Languages)
	if err != nil {
		return nil, err
	}

	bot := &entities.Bot{
		UserID:    ownerID,
		Name:      strings.TrimSpace(input.Name),
		Industry:  input.Industry,
		Goal:      strings.TrimSpace(input.Goal),
		Languages: languages,
		Active:    input.Active,
	}
	if bot.Name == "" || bot.Goal == "" {
		return nil, domainerrors.Validation("name and goal are required")
	}

	if err := u.botRepo.Create(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

// GetBot returns a bot, enforcing ownership for non-admin callers
func (u *BotUsecase) GetBot(ctx context.Context, caller Caller, botID uuid.UUID) (*entities.Bot, error) {
	bot, err := u.botRepo.GetByID(ctx, botID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(bot.UserID) {
		// Hide the bot's existence from other users
		return nil, domainerrors.ErrNotFound
	}
	return bot, nil
}

// ListBots returns the caller's bots in creation order, optionally filtered
// by a case-insensitive search over name, goal and industry display name.
// Admin callers see every bot.
func (u *BotUsecase) ListBots(ctx context.Context, caller Caller, search string) ([]*entities.Bot, error) {
	var bots []*entities.Bot
	var err error
	if caller.IsAdmin() {
		bots, err = u.botRepo.List(ctx)
	} else {
		bots, err = u.botRepo.ListByUser(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return bots, nil
	}

	filtered := make([]*entities.Bot, 0, len(bots))
	for _, bot := range bots {
		if matchesBot(bot, term) {
			filtered = append(filtered, bot)
		}
	}
	return filtered, nil
}

func matchesBot(bot *entities.Bot, term string) bool {
	if strings.Contains(strings.ToLower(bot.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(bot.Goal), term) {
		return true
	}
	if name, err := taxonomy.NameOf(bot.Industry); err == nil {
		if strings.Contains(strings.ToLower(name), term) {
			return true
		}
	}
	return false
}

// UpdateBot applies a partial update to a bot the caller can access
func (u *BotUsecase) UpdateBot(ctx context.Context, caller Caller, botID uuid.UUID, input *entities.UpdateBotInput) (*entities.Bot, error) {
	bot, err := u.GetBot(ctx, caller, botID)
	if err != nil {
		return nil, err
	}

	if input.Name.Valid {
		name := strings.TrimSpace(input.Name.String)
		if name == "" {
			return nil, domainerrors.Validation("name must not be empty")
		}
		bot.Name = name
	}
	if input.Industry.Valid {
		industry := taxonomy.Industry(input.Industry.String)
		if !taxonomy.Valid(industry) {
			return nil, domainerrors.ErrUnknownIndustry
		}
		bot.Industry = industry
	}
	if input.Goal.Valid {
		goal := strings.TrimSpace(input.Goal.String)
		if goal == "" {
			return nil, domainerrors.Validation("goal must not be empty")
		}
		bot.Goal = goal
	}
	if input.Languages != nil {
		languages, err := normalizeLanguages(input.Languages)
		if err != nil {
			return nil, err
		}
		bot.Languages = languages
	}
	if input.Active.Valid {
		bot.Active = input.Active.Bool
	}
	if input.Metrics != nil {
		bot.Metrics = *input.Metrics
	}

	if err := u.botRepo.Update(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

// DeleteBot removes a bot the caller can access
func (u *BotUsecase) DeleteBot(ctx context.Context, caller Caller, botID uuid.UUID) error {
	if _, err := u.GetBot(ctx, caller, botID); err != nil {
		return err
	}
	return u.botRepo.Delete(ctx, botID)
}

func normalizeLanguages(languages []string) ([]string, error) {
	out := make([]string, 0, len(languages))
	seen := map[string]bool{}
	for _, code := range languages {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		if !i18n.IsSupported(code) {
			return nil, domainerrors.Validation("unsupported language: " + code)
		}
		seen[code] = true
		out = append(out, code)
	}
	if len(out) == 0 {
		return nil, domainerrors.Validation("at least one language is required")
	}
	return out, nil
}
