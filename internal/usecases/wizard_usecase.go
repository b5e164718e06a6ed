package usecases

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"ouibooking.backend/internal/domain/entities"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/domain/taxonomy"
	"ouibooking.backend/pkg/i18n"
)

// Step is a stage of the bot creation wizard
type Step string

// Wizard steps, in order. Advancing past one requires its predicate to
// hold; retreating is always allowed.
const (
	StepBasics    Step = "basics"
	StepIndustry  Step = "industry"
	StepGoals     Step = "goals"
	StepLanguages Step = "languages"
	StepReview    Step = "review"
)

var stepOrder = []Step{StepBasics, StepIndustry, StepGoals, StepLanguages, StepReview}

// Steps returns the wizard steps in order
func Steps() []Step {
	out := make([]Step, len(stepOrder))
	copy(out, stepOrder)
	return out
}

func stepIndex(s Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Draft is an in-progress bot configuration. It lives server-side until
// submitted or cancelled and never touches the bot store before submit.
type Draft struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"userId"`
	Step      Step              `json:"step"`
	Name      string            `json:"name"`
	Industry  taxonomy.Industry `json:"industry"`
	Goal      string            `json:"goal"`
	Languages []string          `json:"languages"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (d *Draft) clone() *Draft {
	out := *d
	out.Languages = append([]string(nil), d.Languages...)
	return &out
}

// stepComplete reports whether the draft satisfies the given step's
// predicate.
func (d *Draft) stepComplete(s Step) bool {
	switch s {
	case StepBasics:
		return strings.TrimSpace(d.Name) != ""
	case StepIndustry:
		return taxonomy.Valid(d.Industry)
	case StepGoals:
		return strings.TrimSpace(d.Goal) != ""
	case StepLanguages:
		return len(d.Languages) > 0
	case StepReview:
		return true
	}
	return false
}

// WizardUsecase runs the step-gated bot creation flow. Drafts are held in
// memory per process; losing them on restart matches losing an unsaved
// form.
type WizardUsecase struct {
	botUsecase *BotUsecase

	mu     sync.RWMutex
	drafts map[uuid.UUID]*Draft
}

// NewWizardUsecase creates a new wizard usecase
func NewWizardUsecase(botUsecase *BotUsecase) *WizardUsecase {
	return &WizardUsecase{
		botUsecase: botUsecase,
		drafts:     make(map[uuid.UUID]*Draft),
	}
}

// Start opens a new draft at the basics step. The language list is seeded
// with the caller's interface language so a submitted bot always speaks at
// least the language it was configured in.
func (u *WizardUsecase) Start(ctx context.Context, caller Caller, interfaceLang string) (*Draft, error) {
	lang := interfaceLang
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLanguage
	}

	now := time.Now().UTC()
	draft := &Draft{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		Step:      StepBasics,
		Languages: []string{lang},
		CreatedAt: now,
		UpdatedAt: now,
	}

	u.mu.Lock()
	u.drafts[draft.ID] = draft
	u.mu.Unlock()

	return draft.clone(), nil
}

// Get returns the caller's draft
func (u *WizardUsecase) Get(ctx context.Context, caller Caller, draftID uuid.UUID) (*Draft, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	draft, err := u.lookupLocked(caller, draftID)
	if err != nil {
		return nil, err
	}
	return draft.clone(), nil
}

func (u *WizardUsecase) lookupLocked(caller Caller, draftID uuid.UUID) (*Draft, error) {
	draft, ok := u.drafts[draftID]
	if !ok || draft.UserID != caller.UserID {
		return nil, domainerrors.ErrNotFound
	}
	return draft, nil
}

// SetName sets the draft's bot name
func (u *WizardUsecase) SetName(ctx context.Context, caller Caller, draftID uuid.UUID, name string) (*Draft, error) {
	return u.mutate(caller, draftID, func(d *Draft) error {
		d.Name = strings.TrimSpace(name)
		return nil
	})
}

// SelectIndustry selects an industry, or clears the selection when the
// already-selected code is given again.
func (u *WizardUsecase) SelectIndustry(ctx context.Context, caller Caller, draftID uuid.UUID, industry taxonomy.Industry) (*Draft, error) {
	if !taxonomy.Valid(industry) {
		return nil, domainerrors.ErrUnknownIndustry
	}
	return u.mutate(caller, draftID, func(d *Draft) error {
		if d.Industry == industry {
			d.Industry = ""
			return nil
		}
		d.Industry = industry
		return nil
	})
}

// SetGoal sets the draft's goal text
func (u *WizardUsecase) SetGoal(ctx context.Context, caller Caller, draftID uuid.UUID, goal string) (*Draft, error) {
	return u.mutate(caller, draftID, func(d *Draft) error {
		d.Goal = strings.TrimSpace(goal)
		return nil
	})
}

// ToggleLanguage adds or removes a supported language. The list may be
// toggled empty; the languages step predicate blocks advancing until at
// least one remains.
func (u *WizardUsecase) ToggleLanguage(ctx context.Context, caller Caller, draftID uuid.UUID, code string) (*Draft, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !i18n.IsSupported(code) {
		return nil, domainerrors.Validation("unsupported language: " + code)
	}
	return u.mutate(caller, draftID, func(d *Draft) error {
		for i, existing := range d.Languages {
			if existing == code {
				d.Languages = append(d.Languages[:i], d.Languages[i+1:]...)
				return nil
			}
		}
		d.Languages = append(d.Languages, code)
		return nil
	})
}

// Advance moves the draft forward one step if the current step's predicate
// holds.
func (u *WizardUsecase) Advance(ctx context.Context, caller Caller, draftID uuid.UUID) (*Draft, error) {
	return u.mutate(caller, draftID, func(d *Draft) error {
		idx := stepIndex(d.Step)
		if idx == len(stepOrder)-1 {
			return domainerrors.ErrInvalidStep
		}
		if !d.stepComplete(d.Step) {
			return domainerrors.ErrStepIncomplete
		}
		d.Step = stepOrder[idx+1]
		return nil
	})
}

// Retreat moves the draft back one step, keeping all entered data. At the
// first step it is a no-op.
func (u *WizardUsecase) Retreat(ctx context.Context, caller Caller, draftID uuid.UUID) (*Draft, error) {
	return u.mutate(caller, draftID, func(d *Draft) error {
		idx := stepIndex(d.Step)
		if idx > 0 {
			d.Step = stepOrder[idx-1]
		}
		return nil
	})
}

// Submit turns a reviewed draft into an active bot and discards the draft.
// It fails unless the draft sits at the review step with every earlier
// predicate still holding.
func (u *WizardUsecase) Submit(ctx context.Context, caller Caller, draftID uuid.UUID) (*entities.Bot, error) {
	u.mu.Lock()
	draft, err := u.lookupLocked(caller, draftID)
	if err != nil {
		u.mu.Unlock()
		return nil, err
	}
	if draft.Step != StepReview {
		u.mu.Unlock()
		return nil, domainerrors.ErrInvalidStep
	}
	for _, step := range stepOrder {
		if !draft.stepComplete(step) {
			u.mu.Unlock()
			return nil, domainerrors.ErrStepIncomplete
		}
	}
	input := &entities.CreateBotInput{
		Name:      draft.Name,
		Industry:  draft.Industry,
		Goal:      draft.Goal,
		Languages: append([]string(nil), draft.Languages...),
		Active:    true,
	}
	u.mu.Unlock()

	bot, err := u.botUsecase.CreateBot(ctx, caller.UserID, input)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	delete(u.drafts, draftID)
	u.mu.Unlock()

	return bot, nil
}

// Cancel discards a draft without creating anything
func (u *WizardUsecase) Cancel(ctx context.Context, caller Caller, draftID uuid.UUID) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.lookupLocked(caller, draftID); err != nil {
		return err
	}
	delete(u.drafts, draftID)
	return nil
}

func (u *WizardUsecase) mutate(caller Caller, draftID uuid.UUID, fn func(*Draft) error) (*Draft, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	draft, err := u.lookupLocked(caller, draftID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = time.Now().UTC()
	return draft.clone(), nil
}

// IndustryOption is one selectable entry on the industry step
type IndustryOption struct {
	Code     taxonomy.Industry `json:"code"`
	Name     string            `json:"name"`
	Category taxonomy.Category `json:"category"`
}

// Industries lists the selectable industries for the industry step,
// optionally restricted to one category and filtered by a search term.
func (u *WizardUsecase) Industries(category taxonomy.Category, term string) ([]IndustryOption, error) {
	var codes []taxonomy.Industry
	if category != "" {
		codes = taxonomy.IndustriesIn(category)
		if len(codes) == 0 {
			return nil, domainerrors.BadRequest("unknown category: " + string(category))
		}
		if term != "" {
			matched := taxonomy.Search(term)
			matchSet := make(map[taxonomy.Industry]bool, len(matched))
			for _, code := range matched {
				matchSet[code] = true
			}
			filtered := codes[:0]
			for _, code := range codes {
				if matchSet[code] {
					filtered = append(filtered, code)
				}
			}
			codes = filtered
		}
	} else {
		codes = taxonomy.Search(term)
	}

	options := make([]IndustryOption, 0, len(codes))
	for _, code := range codes {
		name, err := taxonomy.NameOf(code)
		if err != nil {
			return nil, err
		}
		cat, _ := taxonomy.CategoryOf(code)
		options = append(options, IndustryOption{Code: code, Name: name, Category: cat})
	}
	return options, nil
}
