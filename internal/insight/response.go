package insight

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/google/uuid"
)

const (
	MinInsights = 3
	MaxInsights = 4
)

// ErrInvalidResponse is returned for any model output that does not match
// the insight schema. The whole payload is rejected; nothing is salvaged.
var ErrInvalidResponse = errors.New("invalid insights response")

type rawResponse struct {
	Insights *[]rawInsight `json:"insights"`
}

// Pointers distinguish absent fields from zero values.
type rawInsight struct {
	Type       *string  `json:"type"`
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Confidence *float64 `json:"confidence"`
	Actionable *bool    `json:"actionable"`
}

// ParseResponse decodes and validates the model output.
func ParseResponse(raw []byte) ([]domain.InsightDraft, error) {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimSpace(raw)))
	dec.DisallowUnknownFields()

	var resp rawResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidResponse)
	}
	if resp.Insights == nil {
		return nil, fmt.Errorf("%w: missing insights", ErrInvalidResponse)
	}

	items := *resp.Insights
	if len(items) < MinInsights || len(items) > MaxInsights {
		return nil, fmt.Errorf("%w: got %d insights, want %d to %d", ErrInvalidResponse, len(items), MinInsights, MaxInsights)
	}

	drafts := make([]domain.InsightDraft, 0, len(items))
	for i, item := range items {
		d, err := item.validate()
		if err != nil {
			return nil, fmt.Errorf("%w: insight %d: %v", ErrInvalidResponse, i, err)
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

func (r rawInsight) validate() (domain.InsightDraft, error) {
	switch {
	case r.Type == nil:
		return domain.InsightDraft{}, errors.New("missing type")
	case r.Title == nil:
		return domain.InsightDraft{}, errors.New("missing title")
	case r.Content == nil:
		return domain.InsightDraft{}, errors.New("missing content")
	case r.Confidence == nil:
		return domain.InsightDraft{}, errors.New("missing confidence")
	case r.Actionable == nil:
		return domain.InsightDraft{}, errors.New("missing actionable")
	}

	t := domain.InsightType(*r.Type)
	if !t.Valid() {
		return domain.InsightDraft{}, fmt.Errorf("unknown type %q", *r.Type)
	}
	if strings.TrimSpace(*r.Title) == "" {
		return domain.InsightDraft{}, errors.New("empty title")
	}
	if strings.TrimSpace(*r.Content) == "" {
		return domain.InsightDraft{}, errors.New("empty content")
	}
	if *r.Confidence < 0 || *r.Confidence > 1 {
		return domain.InsightDraft{}, fmt.Errorf("confidence %v outside [0, 1]", *r.Confidence)
	}

	return domain.InsightDraft{
		Type:       t,
		Title:      *r.Title,
		Content:    *r.Content,
		Confidence: *r.Confidence,
		Actionable: *r.Actionable,
	}, nil
}

// Finalize gives each draft an identity and a creation timestamp. All
// insights of one generation share the same timestamp.
func Finalize(userID uuid.UUID, drafts []domain.InsightDraft, now time.Time, newID func() uuid.UUID) []domain.AIInsight {
	if newID == nil {
		newID = uuid.New
	}
	out := make([]domain.AIInsight, 0, len(drafts))
	for i, d := range drafts {
		out = append(out, domain.AIInsight{
			ID:         newID(),
			UserID:     userID,
			Type:       d.Type,
			Title:      d.Title,
			Content:    d.Content,
			Confidence: d.Confidence,
			Actionable: d.Actionable,
			CreatedAt:  now.UTC(),
			Position:   i,
		})
	}
	return out
}
