package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"weatherlookup.app/internal/core/forecast"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
	"weatherlookup.app/pkg/validation"
)

type UseCase struct {
	client  ports.WeatherClient
	states  ports.SearchStateRepository
	history ports.SearchHistoryRepository
	logger  ports.Logger
	metrics ports.MetricsCollector
	now     func() time.Time
}

// UseCaseDependencies wires the search use case. History is optional.
type UseCaseDependencies struct {
	Client  ports.WeatherClient
	States  ports.SearchStateRepository
	History ports.SearchHistoryRepository
	Logger  ports.Logger
	Metrics ports.MetricsCollector
	Clock   func() time.Time
}

// stateWriteTimeout bounds each state write once it no longer follows the caller's context
const stateWriteTimeout = 5 * time.Second

// currentStep is the outcome of the current conditions request
type currentStep struct {
	conditions *ports.CurrentConditions
}

// forecastStep is the outcome of the forecast request that follows a successful currentStep
type forecastStep struct {
	entries []forecast.DailyEntry
	status  ForecastStatus
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.States == nil {
		return nil, errors.NewValidationError("search state repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		client:  deps.Client,
		states:  deps.States,
		history: deps.History,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		now:     clock,
	}, nil
}

// NewSession issues an identifier for a fresh search slot
func (uc *UseCase) NewSession() string {
	return uuid.NewString()
}

// OpenSession issues a session and stores its Idle state
func (uc *UseCase) OpenSession(ctx context.Context) (*Result, error) {
	sessionID := uc.NewSession()

	generation, err := uc.states.NextGeneration(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	result := newResult(sessionID, "", generation, uc.now())
	if _, err := uc.publish(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Search runs one search for the session and returns the session's state once
// it ends. A newer search on the same session supersedes this one: its state is
// returned instead and nothing from this search is written after that point.
// Weather failures end up as messages on the result; only state store failures
// and unknown sessions are returned as errors. The caller's context only bounds
// the weather requests: once Loading is stored, the resting state is written
// even if the caller has gone away.
func (uc *UseCase) Search(ctx context.Context, sessionID, query string) (*Result, error) {
	started := uc.now()

	if _, err := uc.State(ctx, sessionID); err != nil {
		return nil, err
	}

	generation, err := uc.states.NextGeneration(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("start search for session %s: %w", sessionID, err)
	}

	city, ok := validation.TrimAndValidate(query)
	result := newResult(sessionID, city, generation, started)

	if !ok {
		return uc.fail(ctx, result, errors.NewValidationError("city query is empty"), MessageEmptyQuery, started)
	}

	if !uc.client.CredentialConfigured() {
		uc.logger.Warn("Weather API credential is not configured", ports.F("session_id", sessionID))
		return uc.fail(ctx, result,
			errors.NewConfigurationError("weather API credential is not configured", nil),
			MessageMissingCredential, started)
	}

	uc.logger.Debug("Search started",
		ports.F("session_id", sessionID),
		ports.F("city", city),
		ports.F("generation", generation))

	result.Status = StatusLoading
	if published, err := uc.publish(ctx, result); err != nil || !published {
		return uc.abandon(ctx, result, err)
	}

	current, err := uc.fetchCurrentStep(ctx, city)
	if err != nil {
		uc.logger.Info("Current conditions request failed",
			ports.F("session_id", sessionID),
			ports.F("city", city),
			ports.F("error", err))
		return uc.fail(ctx, result, err, messageFor(err), started)
	}

	result.Current = current.conditions
	if published, err := uc.publish(ctx, result); err != nil || !published {
		return uc.abandon(ctx, result, err)
	}

	daily := uc.fetchForecastStep(ctx, city, current)
	result.DailyForecast = daily.entries
	result.ForecastStatus = daily.status
	result.Status = StatusSuccess

	return uc.complete(ctx, result, nil, started)
}

// State returns the stored state of a session
func (uc *UseCase) State(ctx context.Context, sessionID string) (*Result, error) {
	data, err := uc.states.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load search state for session %s: %w", sessionID, err)
	}
	return resultFromData(data), nil
}

func (uc *UseCase) fetchCurrentStep(ctx context.Context, city string) (currentStep, error) {
	conditions, err := uc.client.FetchCurrent(ctx, city)
	if err != nil {
		return currentStep{}, err
	}
	if conditions == nil {
		return currentStep{}, errors.NewExternalAPIError("weather client returned no current conditions", nil)
	}
	return currentStep{conditions: conditions}, nil
}

func (uc *UseCase) fetchForecastStep(ctx context.Context, city string, current currentStep) forecastStep {
	samples, err := uc.client.FetchForecast(ctx, city)
	if err != nil {
		uc.logger.Warn("Forecast unavailable, keeping current conditions",
			ports.F("city", city),
			ports.F("location", current.conditions.LocationName),
			ports.F("error", err))
		return forecastStep{entries: []forecast.DailyEntry{}, status: ForecastUnavailable}
	}

	entries := forecast.Aggregate(samples)
	if len(entries) == 0 {
		return forecastStep{entries: entries, status: ForecastEmpty}
	}
	return forecastStep{entries: entries, status: ForecastAvailable}
}

func (uc *UseCase) fail(ctx context.Context, result *Result, cause error, message string, started time.Time) (*Result, error) {
	result.Status = StatusFailed
	result.ErrorMessage = message
	result.Current = nil
	result.DailyForecast = []forecast.DailyEntry{}
	return uc.complete(ctx, result, cause, started)
}

func (uc *UseCase) complete(ctx context.Context, result *Result, cause error, started time.Time) (*Result, error) {
	published, err := uc.publish(ctx, result)
	if err != nil || !published {
		return uc.abandon(ctx, result, err)
	}

	duration := uc.now().Sub(started)
	uc.metrics.RecordSearch(result.Status.String(), duration)
	uc.record(ctx, result, cause, duration)

	uc.logger.Info("Search finished",
		ports.F("session_id", result.SessionID),
		ports.F("city", result.Query),
		ports.F("status", result.Status.String()),
		ports.F("forecast_status", string(result.ForecastStatus)),
		ports.F("duration_ms", duration.Milliseconds()))

	return result, nil
}

func (uc *UseCase) publish(ctx context.Context, result *Result) (bool, error) {
	writeCtx, cancel := detached(ctx)
	defer cancel()

	result.UpdatedAt = uc.now()
	published, err := uc.states.Publish(writeCtx, result.toData())
	if err != nil {
		return false, fmt.Errorf("publish search state for session %s: %w", result.SessionID, err)
	}
	return published, nil
}

// abandon stops a search that lost its slot to a newer one, or whose state could not be written
func (uc *UseCase) abandon(ctx context.Context, result *Result, err error) (*Result, error) {
	if err != nil {
		uc.logger.Error("Failed to publish search state",
			ports.F("session_id", result.SessionID),
			ports.F("error", err))
		return nil, err
	}

	uc.metrics.RecordSupersededSearch()
	uc.logger.Debug("Search superseded by a newer one",
		ports.F("session_id", result.SessionID),
		ports.F("generation", result.Generation))

	readCtx, cancel := detached(ctx)
	defer cancel()
	return uc.State(readCtx, result.SessionID)
}

func (uc *UseCase) record(ctx context.Context, result *Result, cause error, duration time.Duration) {
	if uc.history == nil {
		return
	}

	record := &ports.SearchRecord{
		SessionID:      result.SessionID,
		Query:          result.Query,
		Status:         result.Status.String(),
		ForecastStatus: string(result.ForecastStatus),
		ForecastDays:   len(result.DailyForecast),
		DurationMs:     duration.Milliseconds(),
		CreatedAt:      result.UpdatedAt,
	}
	if cause != nil {
		record.ErrorKind = errors.TypeOf(cause).String()
	}

	writeCtx, cancel := detached(ctx)
	defer cancel()

	if err := uc.history.Record(writeCtx, record); err != nil {
		uc.logger.Warn("Failed to record search history",
			ports.F("session_id", result.SessionID),
			ports.F("error", err))
	}
}

func messageFor(err error) string {
	switch errors.TypeOf(err) {
	case errors.ConfigurationError:
		return MessageMissingCredential
	case errors.NotFoundError:
		return MessageCityNotFound
	case errors.ProviderStatusError:
		if msg := errors.MessageOf(err); msg != "" {
			return providerMessagePrefix + msg
		}
		return MessageCityNotFound
	default:
		return MessageNetworkError
	}
}

// detached keeps the values of ctx but not its cancellation
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), stateWriteTimeout)
}
