package usecases

import (
	"context"

	"ouibooking.backend/internal/domain/entities"
	"ouibooking.backend/internal/domain/repositories"
	"ouibooking.backend/internal/domain/taxonomy"
)

// UserStats summarises the caller's own bots for the dashboard landing page
type UserStats struct {
	TotalBots         int     `json:"totalBots"`
	ActiveBots        int     `json:"activeBots"`
	TotalInteractions int     `json:"totalInteractions"`
	AvgSuccessRate    float64 `json:"avgSuccessRate"`
}

// IndustryStat is one row of the platform industry breakdown
type IndustryStat struct {
	Industry taxonomy.Industry `json:"industry"`
	Name     string            `json:"name"`
	Category taxonomy.Category `json:"category"`
	Bots     int               `json:"bots"`
}

// PlatformStats is the admin-only platform overview
type PlatformStats struct {
	TotalUsers int            `json:"totalUsers"`
	TotalBots  int            `json:"totalBots"`
	ActiveBots int            `json:"activeBots"`
	Industries []IndustryStat `json:"industries"`
}

// DashboardUsecase aggregates store contents into dashboard figures
type DashboardUsecase struct {
	userRepo repositories.UserRepository
	botRepo  repositories.BotRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(userRepo repositories.UserRepository, botRepo repositories.BotRepository) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo: userRepo,
		botRepo:  botRepo,
	}
}

// UserStats computes the caller's own dashboard figures
func (u *DashboardUsecase) UserStats(ctx context.Context, caller Caller) (*UserStats, error) {
	bots, err := u.botRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return summarize(bots), nil
}

func summarize(bots []*entities.Bot) *UserStats {
	stats := &UserStats{TotalBots: len(bots)}
	for _, bot := range bots {
		if bot.Active {
			stats.ActiveBots++
		}
		stats.TotalInteractions += bot.Metrics.Interactions
		stats.AvgSuccessRate += bot.Metrics.SuccessRate
	}
	if len(bots) > 0 {
		stats.AvgSuccessRate /= float64(len(bots))
	}
	return stats
}

// PlatformStats computes the admin platform overview. Industries with no
// bots are omitted; rows follow the taxonomy's category order.
func (u *DashboardUsecase) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	userCount, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	bots, err := u.botRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := u.botRepo.IndustryCount(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		TotalUsers: userCount,
		TotalBots:  len(bots),
		Industries: []IndustryStat{},
	}
	for _, bot := range bots {
		if bot.Active {
			stats.ActiveBots++
		}
	}
	for _, code := range taxonomy.All() {
		n := counts[code]
		if n == 0 {
			continue
		}
		name, err := taxonomy.NameOf(code)
		if err != nil {
			return nil, err
		}
		cat, _ := taxonomy.CategoryOf(code)
		stats.Industries = append(stats.Industries, IndustryStat{
			Industry: code,
			Name:     name,
			Category: cat,
			Bots:     n,
		})
	}
	return stats, nil
}
