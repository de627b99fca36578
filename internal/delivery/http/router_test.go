package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/mpit2026-discovery/internal/delivery/http/handler"
	"github.com/gdugdh24/mpit2026-discovery/internal/delivery/http/middleware"
	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/gdugdh24/mpit2026-discovery/internal/repository"
	"github.com/gdugdh24/mpit2026-discovery/internal/usecase/event"
	"github.com/gdugdh24/mpit2026-discovery/internal/usecase/feed"
)

const testSecret = "test-secret-that-is-at-least-32-bytes-long"

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

type profileStore struct {
	profiles []domain.Profile
}

func (s *profileStore) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].UserID == userID {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (s *profileStore) List(_ context.Context, filter repository.ProfileFilter) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range s.profiles {
		if p.UserID != filter.ExcludeUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

type eventStore struct {
	events []domain.Event
}

func (s *eventStore) Create(_ context.Context, e *domain.Event) error {
	e.ID = len(s.events) + 1
	e.CreatedAt = testNow
	s.events = append(s.events, *e)
	return nil
}

func (s *eventStore) GetByID(_ context.Context, id int) (*domain.Event, error) {
	if id < 1 || id > len(s.events) {
		return nil, domain.ErrEventNotFound
	}
	e := s.events[id-1]
	return &e, nil
}

func (s *eventStore) ListStartingFrom(_ context.Context, _ time.Time, limit int) ([]domain.Event, error) {
	return limited(s.events, limit), nil
}

func (s *eventStore) ListCreatedSince(_ context.Context, _ time.Time, limit int) ([]domain.Event, error) {
	return limited(s.events, limit), nil
}

// limited mirrors the repository contract: limit <= 0 means everything.
func limited(events []domain.Event, limit int) []domain.Event {
	if limit > 0 && len(events) > limit {
		return events[:limit]
	}
	return events
}

func (s *eventStore) UpdateCategory(_ context.Context, id int, c domain.Category) error {
	if id < 1 || id > len(s.events) {
		return domain.ErrEventNotFound
	}
	s.events[id-1].Category = c
	return nil
}

type fixedClassifier domain.Category

func (f fixedClassifier) Classify(context.Context, string, string) domain.Category {
	return domain.Category(f)
}

func newTestRouter(t *testing.T) (*gin.Engine, *eventStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := func() time.Time { return testNow }
	profiles := &profileStore{profiles: []domain.Profile{
		{ID: 1, UserID: 1, InterestsText: "music, hiking", IsOnboardingComplete: true, CreatedAt: testNow},
		{ID: 2, UserID: 2, InterestsText: "music", IsOnboardingComplete: true, CreatedAt: testNow},
		{ID: 3, UserID: 3, InterestsText: "music, hiking, chess", IsOnboardingComplete: true, CreatedAt: testNow.AddDate(0, 0, -30)},
	}}
	events := &eventStore{}

	router := NewRouter(
		handler.NewFeedHandler(feed.NewFeedUseCase(profiles, 100, 7, now)),
		handler.NewEventHandler(event.NewEventUseCase(events, fixedClassifier(domain.CategoryOutdoor), 7, now)),
		middleware.NewAuthMiddleware(testSecret),
		zerolog.Nop(),
	)
	return router.Setup(), events
}

func signToken(t *testing.T, secret string, userID int) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/discovery/recommendations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/discovery/recommendations", nil, signToken(t, "some-other-secret-also-32-bytes-long!", 1))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecommendations(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/discovery/recommendations?limit=5", nil, signToken(t, testSecret, 1))
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.RecommendationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].UserID)
	assert.Equal(t, 2, got[0].RecommendationScore)
	assert.Equal(t, 2, got[1].UserID)
}

func TestRecommendations_UnknownViewer(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/discovery/recommendations", nil, signToken(t, testSecret, 99))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommendations_BadLimit(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/discovery/recommendations?limit=abc", nil, signToken(t, testSecret, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewcomers(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/discovery/newcomers?days=7", nil, signToken(t, testSecret, 1))
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].UserID)
}

func TestDistance(t *testing.T) {
	r, _ := newTestRouter(t)
	token := signToken(t, testSecret, 1)

	w := do(t, r, http.MethodGet, "/api/v1/discovery/distance?lat1=0&lon1=0&lat2=0&lon2=1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var got handler.DistanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.InDelta(t, 111.19, got.DistanceKm, 0.01)

	w = do(t, r, http.MethodGet, "/api/v1/discovery/distance?lat1=95&lon1=0&lat2=0&lon2=1", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/discovery/distance?lat1=0&lon1=0", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent(t *testing.T) {
	r, events := newTestRouter(t)
	token := signToken(t, testSecret, 7)

	w := do(t, r, http.MethodPost, "/api/v1/events", map[string]any{
		"title":     "Trail walk",
		"location":  "Hill park",
		"starts_at": testNow.Add(24 * time.Hour),
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var got domain.ScheduledEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.CategoryOutdoor, got.Category)
	assert.Equal(t, domain.BucketTomorrow, got.When)
	require.Len(t, events.events, 1)
	assert.Equal(t, 7, events.events[0].CreatorID)

	w = do(t, r, http.MethodPost, "/api/v1/events", map[string]any{"location": "nowhere"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyDryRun(t *testing.T) {
	r, events := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/events/classify", map[string]any{"title": "Kayaking"}, signToken(t, testSecret, 1))
	require.Equal(t, http.StatusOK, w.Code)

	var got handler.ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.CategoryOutdoor, got.Category)
	assert.Empty(t, events.events)
}

func TestRecategorize(t *testing.T) {
	r, events := newTestRouter(t)
	token := signToken(t, testSecret, 1)
	events.events = append(events.events, domain.Event{ID: 1, Title: "Hike", Category: domain.CategoryUncategorized, StartsAt: testNow})

	w := do(t, r, http.MethodPost, "/api/v1/events/1/categorize", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.CategoryOutdoor, events.events[0].Category)

	w = do(t, r, http.MethodPost, "/api/v1/events/9/categorize", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/events/x/categorize", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpcoming(t *testing.T) {
	r, events := newTestRouter(t)
	events.events = append(events.events, domain.Event{ID: 1, Title: "Tonight", StartsAt: testNow.Add(6 * time.Hour)})

	w := do(t, r, http.MethodGet, "/api/v1/events/upcoming", nil, signToken(t, testSecret, 1))
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.ScheduledEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, domain.BucketToday, got[0].When)
}

func TestEventLists_Limit(t *testing.T) {
	r, events := newTestRouter(t)
	token := signToken(t, testSecret, 1)
	for i := 1; i <= 3; i++ {
		events.events = append(events.events, domain.Event{ID: i, Title: "Meetup", StartsAt: testNow.Add(time.Hour), CreatedAt: testNow})
	}

	tests := []struct {
		path string
		want int
	}{
		{"/api/v1/events/upcoming?limit=0", 3},
		{"/api/v1/events/upcoming?limit=2", 2},
		{"/api/v1/events/newcomers?limit=0", 3},
		{"/api/v1/events/newcomers?limit=1", 1},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, r, http.MethodGet, tt.path, nil, token)
			require.Equal(t, http.StatusOK, w.Code)

			var got []domain.ScheduledEvent
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Len(t, got, tt.want)
		})
	}
}
