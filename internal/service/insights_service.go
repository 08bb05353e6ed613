package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/insight"
	"github.com/flowise/cycle-tracker/internal/langfuse"
	"github.com/flowise/cycle-tracker/internal/llm"
	"github.com/flowise/cycle-tracker/internal/logger"
	"github.com/flowise/cycle-tracker/internal/repository"
	"github.com/flowise/cycle-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService generates AI insights from the stored profile and logs.
type InsightsService interface {
	// Generate asks the model for 3 to 4 insights and appends them to the
	// user's history. Any model failure yields domain.ErrInsightsFailed and
	// stores nothing.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.GenerateInsightsResponse, error)
	// List returns insight history newest first.
	List(ctx context.Context, userID uuid.UUID, filter domain.InsightFilter) (*domain.InsightListResponse, error)
	// Feedback attaches a user rating to a generation trace.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightFeedbackRequest) error
}

var errUnavailable = fmt.Errorf("%w: %w", domain.ErrInsightsFailed, domain.ErrInsightsUnavailable)

type insightsService struct {
	userRepo       repository.UserRepository
	store          StoreService
	insightRepo    repository.InsightRepository
	llmClient      llm.InsightsLLM
	langfuseClient langfuse.Client
	systemPrompt   string
	log            *logger.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewInsightsService creates a new InsightsService. A nil llmClient makes
// Generate report domain.ErrInsightsUnavailable; an empty systemPrompt
// falls back to insight.DefaultSystemPrompt.
func NewInsightsService(
	userRepo repository.UserRepository,
	store StoreService,
	insightRepo repository.InsightRepository,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
	systemPrompt string,
	log *logger.Logger,
) InsightsService {
	if systemPrompt == "" {
		systemPrompt = insight.DefaultSystemPrompt
	}
	if log == nil {
		log = logger.Nop()
	}
	return &insightsService{
		userRepo:       userRepo,
		store:          store,
		insightRepo:    insightRepo,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		systemPrompt:   systemPrompt,
		log:            log,
		now:            time.Now,
		newID:          uuid.New,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.GenerateInsightsResponse, error) {
	ctx, span := otel.Tracer("cycle-tracker-api/insights").Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("user_id", userID.String())),
	)
	defer span.End()

	snapshot, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot.Profile == nil {
		return nil, domain.ErrProfileIncomplete
	}
	if s.llmClient == nil {
		return nil, errUnavailable
	}

	prompt := insight.BuildPrompt(snapshot.Profile, snapshot.SymptomEntries, snapshot.CycleEntries)

	raw, err := s.llmClient.Complete(ctx, llm.Request{
		SystemPrompt: s.systemPrompt,
		UserPrompt:   prompt,
		SchemaName:   insight.SchemaName,
		Schema:       insight.Schema(),
	})
	if errors.Is(err, llm.ErrOpenAIUnavailable) {
		return nil, errUnavailable
	}
	if err != nil {
		return nil, s.fail(span, userID, "model call failed", err)
	}

	drafts, err := insight.ParseResponse(raw)
	if err != nil {
		return nil, s.fail(span, userID, "model response rejected", err)
	}

	insights := insight.Finalize(userID, drafts, s.now(), s.newID)
	traceID := s.trace(ctx, span, userID, prompt, drafts)
	for i := range insights {
		insights[i].TraceID = traceID
	}

	if err := s.store.AppendInsights(ctx, userID, insights); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store insights")
		return nil, err
	}

	span.SetAttributes(attribute.Int("insights", len(insights)))

	resp := &domain.GenerateInsightsResponse{
		Insights: make([]domain.AIInsightResponse, len(insights)),
		TraceID:  traceID,
	}
	for i := range insights {
		resp.Insights[i] = insights[i].ToResponse()
	}
	return resp, nil
}

// fail logs the cause and collapses it into the generic insights error.
func (s *insightsService) fail(span trace.Span, userID uuid.UUID, msg string, err error) error {
	s.log.Warn(msg, "user_id", userID, "error", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	return domain.ErrInsightsFailed
}

// trace links the generation to the current OTEL trace and records it in
// Langfuse. It returns the id clients use to send feedback, which may be
// empty when neither tracing nor Langfuse is configured.
func (s *insightsService) trace(ctx context.Context, span trace.Span, userID uuid.UUID, prompt string, drafts []domain.InsightDraft) string {
	var traceID string
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}
	if s.langfuseClient == nil {
		return traceID
	}

	id, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
		ID:     traceID,
		UserID: userID.String(),
		Name:   "cycle-insights",
		Input:  map[string]any{"prompt": prompt},
		Output: map[string]any{"insights": drafts},
		Tags:   []string{"cycle-tracker", "insights"},
	})
	if err != nil {
		s.log.Warn("langfuse trace failed", "user_id", userID, "error", err)
	}
	if id != "" {
		traceID = id
	}
	return traceID
}

func (s *insightsService) List(ctx context.Context, userID uuid.UUID, filter domain.InsightFilter) (*domain.InsightListResponse, error) {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	filter.Limit = limit

	insights, err := s.insightRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	hasMore := len(insights) > limit
	if hasMore {
		insights = insights[:limit]
	}

	resp := &domain.InsightListResponse{
		Data: make([]domain.AIInsightResponse, len(insights)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range insights {
		resp.Data[i] = insights[i].ToResponse()
	}

	if hasMore && len(insights) > 0 {
		last := insights[len(insights)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
			Position:  last.Position,
		}
		resp.Pagination.NextCursor = cursor.Encode()
	}

	return resp, nil
}

func (s *insightsService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightFeedbackRequest) error {
	if err := requireUser(ctx, s.userRepo, userID); err != nil {
		return err
	}
	if s.langfuseClient == nil {
		return nil
	}

	// Scores are best effort; an unreachable Langfuse never fails the request.
	if err := s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		s.log.Warn("langfuse score failed", "user_id", userID, "trace_id", req.TraceID, "error", err)
	}
	return nil
}
