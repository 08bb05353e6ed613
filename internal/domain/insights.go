package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsightType categorizes an AI insight.
// @Description AI insight category.
type InsightType string

const (
	InsightCyclePrediction      InsightType = "cycle_prediction"
	InsightSymptomPattern       InsightType = "symptom_pattern"
	InsightHealthRecommendation InsightType = "health_recommendation"
	InsightFertilityInsight     InsightType = "fertility_insight"
)

// InsightTypes lists every accepted category in schema order.
var InsightTypes = []InsightType{
	InsightCyclePrediction,
	InsightSymptomPattern,
	InsightHealthRecommendation,
	InsightFertilityInsight,
}

// Valid reports whether t is a known category.
func (t InsightType) Valid() bool {
	for _, known := range InsightTypes {
		if t == known {
			return true
		}
	}
	return false
}

// InsightDraft is one validated record of the model response, before it is
// given an identity.
type InsightDraft struct {
	Type       InsightType `json:"type"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Confidence float64     `json:"confidence"`
	Actionable bool        `json:"actionable"`
}

// AIInsight is a stored insight. Insights are appended to history and never
// mutated.
type AIInsight struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID   `gorm:"type:uuid;not null;index:idx_ai_insights_user_created" json:"user_id"`
	Type       InsightType `gorm:"type:varchar(32);not null" json:"type"`
	Title      string      `gorm:"not null" json:"title"`
	Content    string      `gorm:"not null" json:"content"`
	Confidence float64     `gorm:"not null" json:"confidence"`
	Actionable bool        `gorm:"not null" json:"actionable"`
	TraceID    string      `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	CreatedAt  time.Time   `gorm:"not null;index:idx_ai_insights_user_created,sort:desc" json:"created_at"`
	// Position orders the insights of one generation, which share CreatedAt.
	Position int `gorm:"type:smallint;not null;default:0" json:"position"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AIInsight) TableName() string {
	return "ai_insights"
}

// AIInsightResponse is the response body for a single insight.
// @Description Generated insight record.
type AIInsightResponse struct {
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Insight category
	Type InsightType `json:"type" example:"cycle_prediction" enums:"cycle_prediction,symptom_pattern,health_recommendation,fertility_insight"`
	// Short headline
	Title string `json:"title" example:"Your next period is likely around Jan 29"`
	// Narrative text
	Content string `json:"content" example:"Based on your 28 day average cycle..."`
	// Model confidence between 0 and 1
	Confidence float64 `json:"confidence" example:"0.8" minimum:"0" maximum:"1"`
	// Whether the insight suggests an action
	Actionable bool `json:"actionable" example:"true"`
	// Creation date (YYYY-MM-DD)
	Date string `json:"date" example:"2024-01-10"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-10T08:30:00Z"`
}

func (i *AIInsight) ToResponse() AIInsightResponse {
	return AIInsightResponse{
		ID:         i.ID,
		Type:       i.Type,
		Title:      i.Title,
		Content:    i.Content,
		Confidence: i.Confidence,
		Actionable: i.Actionable,
		Date:       i.CreatedAt.UTC().Format(DateLayout),
		CreatedAt:  i.CreatedAt,
	}
}

// GenerateInsightsResponse is the response body of insight generation.
// @Description Freshly generated insights.
type GenerateInsightsResponse struct {
	Insights []AIInsightResponse `json:"insights"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// InsightListResponse is the response body for insight history.
// @Description Paginated insight history, newest first.
type InsightListResponse struct {
	Data       []AIInsightResponse `json:"data"`
	Pagination PaginationResponse  `json:"pagination"`
}

// InsightFilter contains pagination parameters for insight history.
type InsightFilter struct {
	Limit  int
	Cursor string
}

// InsightFeedbackRequest is the request body for rating a generation.
// @Description Request body for submitting feedback on generated insights.
type InsightFeedbackRequest struct {
	// Trace ID from the generation response
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"The insights were helpful!"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}
