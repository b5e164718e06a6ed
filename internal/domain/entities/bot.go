package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"ouibooking.backend/internal/domain/taxonomy"
)

// BotMetrics holds simulated usage metrics. They are zeroed at creation and
// only replaceable as a whole through the update path.
type BotMetrics struct {
	Interactions              int     `json:"interactions"`
	SuccessRate               float64 `json:"successRate"`
	AverageConversationLength float64 `json:"averageConversationLength"`
}

// Bot represents a configured conversational-agent profile
type Bot struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"userId"`
	Name      string            `json:"name"`
	Industry  taxonomy.Industry `json:"industry"`
	Goal      string            `json:"goal"`
	Languages []string          `json:"languages"`
	Active    bool              `json:"active"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Metrics   BotMetrics        `json:"metrics"`
}

// CreateBotInput represents the payload handed to the bot store. The wizard
// builds one of these from its draft on submit.
type CreateBotInput struct {
	Name      string            `json:"name" binding:"required"`
	Industry  taxonomy.Industry `json:"industry" binding:"required"`
	Goal      string            `json:"goal" binding:"required"`
	Languages []string          `json:"languages" binding:"required,min=1"`
	Active    bool              `json:"active"`
}

// UpdateBotInput represents a partial bot update; unset fields are left
// untouched. Metrics are replaced as a whole when present.
type UpdateBotInput struct {
	Name      null.String `json:"name"`
	Industry  null.String `json:"industry"`
	Goal      null.String `json:"goal"`
	Languages []string    `json:"languages"`
	Active    null.Bool   `json:"active"`
	Metrics   *BotMetrics `json:"metrics"`
}
