package usecase

import (
	"context"
	"time"

	"mahalla/internal/domain/entity"
)

// QuickSendInput is a submission of the quick-send form.
type QuickSendInput struct {
	EmergencyType entity.EmergencyType
	Title         string
	MessageText   string
	Placeholders  entity.PlaceholderValues
	Scope         entity.RecipientScope
	Areas         []string   // accepted, not used for targeting
	SendAt        *time.Time // accepted, delivery is always immediate
	OperatorID    *int64
}

// CustomSendInput is a submission of the custom-send form.
type CustomSendInput struct {
	Title        string
	MessageText  string
	Category     string // category name, display title or code
	Priority     entity.Priority
	Scope        entity.RecipientScope
	AgeGroups    []string // accepted, not used for targeting
	AffectedArea string
	SendAt       *time.Time
	OperatorID   *int64
}

// SendResult reports a committed broadcast.
type SendResult struct {
	Broadcast *entity.EmergencyBroadcast `json:"broadcast"`
	// Delivered is the number of delivery-log rows written.
	Delivered int `json:"delivered"`
	// Estimated is the count shown to the operator for the chosen scope.
	Estimated int64 `json:"estimated"`
}

// EmergencyUsecase defines the send-side use cases of the emergency page.
type EmergencyUsecase interface {
	// EstimateRecipients returns the recipient count displayed for a scope.
	EstimateRecipients(ctx context.Context, scope entity.RecipientScope) (int64, error)

	// RecipientSummary returns the sidebar overview of the citizen registry.
	RecipientSummary(ctx context.Context) (entity.RecipientSummary, error)

	// SendQuick validates a quick-send form, fills its placeholders and sends it
	// with the catalog entry's type and priority.
	SendQuick(ctx context.Context, input QuickSendInput) (*SendResult, error)

	// SendCustom validates a custom-send form and sends it.
	SendCustom(ctx context.Context, input CustomSendInput) (*SendResult, error)

	// Counter describes the live character counter for a message body.
	Counter(text string) entity.CharCounter
}
