package repositories

import (
	"context"
	"fmt"

	"ouibooking.backend/internal/domain/entities"
	domainrepos "ouibooking.backend/internal/domain/repositories"
)

// seedPasswordHash is a bcrypt hash of "password", the password every demo
// account starts with. Verification is still per-account bcrypt.
const seedPasswordHash = "$2a$10$I/2yaZm1F2Ja/Rzhwf/X2.Y0eEGh3zMyhqjhWfI5R40DrL87iJTr6"

// SeedDemoData populates empty stores with the built-in sample accounts and
// bots: one admin, five users and three example bots. A store that already
// holds users is left untouched.
func SeedDemoData(ctx context.Context, users domainrepos.UserRepository, bots domainrepos.BotRepository) error {
	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	admin := &entities.User{
		Email:        "admin@ouibooking.com",
		Name:         "Admin User",
		PasswordHash: seedPasswordHash,
		Role:         entities.UserRoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	regular := make([]*entities.User, 0, 5)
	for i := 1; i <= 5; i++ {
		u := &entities.User{
			Email:        fmt.Sprintf("user%d@ouibooking.com", i),
			Name:         fmt.Sprintf("User %d", i),
			PasswordHash: seedPasswordHash,
			Role:         entities.UserRoleUser,
		}
		if err := users.Create(ctx, u); err != nil {
			return err
		}
		regular = append(regular, u)
	}

	samples := []struct {
		bot     entities.Bot
		metrics entities.BotMetrics
	}{
		{
			bot: entities.Bot{
				UserID:    admin.ID,
				Name:      "Medical Assistant",
				Industry:  "general_surgery_services",
				Goal:      "Help patients book appointments and answer common questions",
				Languages: []string{"en", "fr"},
				Active:    true,
			},
			metrics: entities.BotMetrics{Interactions: 1237, SuccessRate: 87, AverageConversationLength: 4.3},
		},
		{
			bot: entities.Bot{
				UserID:    admin.ID,
				Name:      "Property Finder",
				Industry:  "find_rental_property",
				Goal:      "Help users find rental properties based on their preferences",
				Languages: []string{"en", "fr", "es"},
				Active:    true,
			},
			metrics: entities.BotMetrics{Interactions: 2158, SuccessRate: 92, AverageConversationLength: 6.7},
		},
		{
			bot: entities.Bot{
				UserID:    regular[0].ID,
				Name:      "Financial Advisor",
				Industry:  "financial_services",
				Goal:      "Provide financial advice and help with budget planning",
				Languages: []string{"en", "fr", "it"},
				Active:    false,
			},
			metrics: entities.BotMetrics{Interactions: 458, SuccessRate: 75, AverageConversationLength: 8.2},
		},
	}

	for _, s := range samples {
		b := s.bot
		if err := bots.Create(ctx, &b); err != nil {
			return err
		}
		// Creation zeroes metrics; the samples ship with simulated usage.
		b.Metrics = s.metrics
		if err := bots.Update(ctx, &b); err != nil {
			return err
		}
	}
	return nil
}
