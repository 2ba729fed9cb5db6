package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/gameday/internal/common/clock/mocks"
	"github.com/KirkDiggler/gameday/internal/common/uuid"
	uuidMocks "github.com/KirkDiggler/gameday/internal/common/uuid/mocks"
	"github.com/KirkDiggler/gameday/internal/gameday"
	"github.com/KirkDiggler/gameday/internal/metrics"
	"github.com/KirkDiggler/gameday/internal/models"
	supporterRepo "github.com/KirkDiggler/gameday/internal/repositories/supporter"
	"github.com/KirkDiggler/gameday/internal/services/game"
	gameMocks "github.com/KirkDiggler/gameday/internal/services/game/mocks"
	"github.com/KirkDiggler/gameday/internal/services/supporter"
	supporterMocks "github.com/KirkDiggler/gameday/internal/services/supporter/mocks"
)

type ServerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGame      *gameMocks.MockService
	mockSupporter *supporterMocks.MockService
	mockClock     *mocks.MockClock
	recorder      *metrics.Recorder
	registry      *prometheus.Registry
	server        *Server
	handler       http.Handler

	now          time.Time
	testPlayerID string
	password     string
}

func (s *ServerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.mockSupporter = supporterMocks.NewMockService(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)

	s.now = time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC)
	s.testPlayerID = "player-1"
	s.password = "go-hawks"
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	s.registry = prometheus.NewRegistry()
	recorder, err := metrics.New(s.registry)
	s.Require().NoError(err)
	s.recorder = recorder

	hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.MinCost)
	s.Require().NoError(err)

	server, err := New(&Config{
		GameService:       s.mockGame,
		SupporterService:  s.mockSupporter,
		Clock:             s.mockClock,
		Metrics:           s.recorder,
		AdminPasswordHash: string(hash),
		AdminTokenSecret:  "test-secret",
		AdminTokenTTL:     time.Hour,
		Burst:             100,
	})
	s.Require().NoError(err)
	s.server = server
	s.handler = server.Handler()
}

func (s *ServerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) login() string {
	rec := s.do(http.MethodPost, "/api/v1/admin/login", map[string]string{"password": s.password}, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp loginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestGetGameDay() {
	state := &models.DailyGameState{UserID: s.testPlayerID, Date: "2025-10-12", FieldPosition: 20, Down: 1, YardsToGo: 10}
	s.mockGame.EXPECT().
		GetGameDay(gomock.Any(), &game.GetGameDayInput{PlayerID: s.testPlayerID}).
		Return(&game.GetGameDayOutput{State: state, Pace: &game.PaceReport{Expected: 0.27}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/players/player-1/game-day", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp gameDayResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2025-10-12", resp.State.Date)
	s.Equal(0.27, resp.Pace.Expected)

	s.Equal(1.0, s.requestCount("/api/v1/players/{playerID}/game-day", http.MethodGet, "2xx"))
}

// requestCount reads http_requests_total for one label set from the test registry
func (s *ServerTestSuite) requestCount(path, method, status string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)

	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["path"] == path && labels["method"] == method && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func (s *ServerTestSuite) TestLogIntake() {
	s.mockGame.EXPECT().
		LogIntake(gomock.Any(), &game.LogIntakeInput{PlayerID: s.testPlayerID, Category: models.CategoryAntacid, Amount: 1}).
		Return(&game.LogIntakeOutput{
			Play:  &models.Play{ID: "p1", Category: models.CategoryAntacid, YardsGained: 5},
			State: &models.DailyGameState{UserID: s.testPlayerID},
			Pace:  &game.PaceReport{},
		}, nil)

	// aliases are accepted
	rec := s.do(http.MethodPost, "/api/v1/players/player-1/intake", intakeRequest{Category: "soda", Amount: 1}, nil)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp playResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(5.0, resp.Play.YardsGained)
	s.NotNil(resp.GoalsAwarded)
}

func (s *ServerTestSuite) TestLogIntakeErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid amount", err: game.ErrInvalidAmount, status: http.StatusBadRequest},
		{name: "in flight", err: game.ErrPlayInProgress, status: http.StatusConflict},
		{name: "store down", err: fmt.Errorf("%w: dial tcp", game.ErrStoreUnavailable), status: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockGame.EXPECT().LogIntake(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/api/v1/players/player-1/intake", intakeRequest{Category: "fluids", Amount: 100}, nil)
			s.Equal(tc.status, rec.Code)
		})
	}
}

func (s *ServerTestSuite) TestLogIntakeUnknownCategory() {
	rec := s.do(http.MethodPost, "/api/v1/players/player-1/intake", intakeRequest{Category: "beer", Amount: 1}, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestRemoveIntake() {
	s.mockGame.EXPECT().
		RemoveIntake(gomock.Any(), &game.RemoveIntakeInput{PlayerID: s.testPlayerID, Category: models.CategoryFluids, Amount: 250}).
		Return(&game.RemoveIntakeOutput{State: &models.DailyGameState{}, Removed: 250}, nil)

	rec := s.do(http.MethodDelete, "/api/v1/players/player-1/intake?category=fluids&amount=250", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"removed":250`)

	rec = s.do(http.MethodDelete, "/api/v1/players/player-1/intake?category=fluids&amount=lots", nil, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestGetSeason() {
	history := &models.SeasonHistory{UserID: s.testPlayerID, Records: []*models.GameRecord{{Date: "2025-10-11", OffenseScore: 7, Winner: models.TeamOffense}}}
	s.mockGame.EXPECT().
		GetSeason(gomock.Any(), gomock.Any()).
		Return(&game.GetSeasonOutput{History: history, Summary: gameday.Summarize(history)}, nil)

	rec := s.do(http.MethodGet, "/api/v1/players/player-1/season", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"wins":1`)
}

func (s *ServerTestSuite) TestResetRequiresAdmin() {
	rec := s.do(http.MethodPost, "/api/v1/admin/players/player-1/reset-day", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/admin/players/player-1/reset-day", nil, map[string]string{"Authorization": "Bearer nope"})
	s.Equal(http.StatusUnauthorized, rec.Code)

	token := s.login()
	s.mockGame.EXPECT().
		ResetDay(gomock.Any(), &game.ResetDayInput{PlayerID: s.testPlayerID}).
		Return(&game.ResetDayOutput{State: &models.DailyGameState{UserID: s.testPlayerID}}, nil)

	rec = s.do(http.MethodPost, "/api/v1/admin/players/player-1/reset-day", nil, map[string]string{"Authorization": "Bearer " + token})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestAdminTokenExpires() {
	token := s.login()
	s.now = s.now.Add(2 * time.Hour)

	rec := s.do(http.MethodPost, "/api/v1/admin/players/player-1/reset-season", nil, map[string]string{"Authorization": "Bearer " + token})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestAdminLoginWrongPassword() {
	rec := s.do(http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "go-niners"}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestPostSupporter() {
	s.mockSupporter.EXPECT().
		PostMessage(gomock.Any(), &supporter.PostMessageInput{Name: "Mom", Message: "Proud of you", AuthorID: "browser-1"}).
		Return(&supporter.PostMessageOutput{Message: &models.SupporterMessage{ID: "m1", Name: "Mom", Message: "Proud of you", AuthorID: "browser-1"}}, nil)

	rec := s.do(http.MethodPost, "/api/v1/supporters", postSupporterRequest{Name: "Mom", Message: "Proud of you"}, map[string]string{supporterIDHeader: "browser-1"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp postSupporterResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("m1", resp.Message.ID)
	s.Equal("browser-1", resp.SupporterID)
	s.NotContains(rec.Body.String(), "author_id")
}

func (s *ServerTestSuite) TestPostSupporterMintsSupporterID() {
	mockUUID := uuidMocks.NewMockUUID(s.mockCtrl)
	mockUUID.EXPECT().NewUUID().Return("minted-id")

	server, err := New(&Config{
		GameService:      s.mockGame,
		SupporterService: s.mockSupporter,
		Clock:            s.mockClock,
		UUIDGenerator:    mockUUID,
	})
	s.Require().NoError(err)
	s.handler = server.Handler()

	s.mockSupporter.EXPECT().
		PostMessage(gomock.Any(), &supporter.PostMessageInput{Name: "Dad", Message: "Go!", AuthorID: "minted-id"}).
		Return(&supporter.PostMessageOutput{Message: &models.SupporterMessage{ID: "m1", Name: "Dad", Message: "Go!", AuthorID: "minted-id"}}, nil)

	rec := s.do(http.MethodPost, "/api/v1/supporters", postSupporterRequest{Name: "Dad", Message: "Go!"}, nil)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp postSupporterResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("minted-id", resp.SupporterID)
}

func (s *ServerTestSuite) TestPostSupporterErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "too long", err: supporter.ErrMessageTooLong, status: http.StatusBadRequest},
		{name: "rate limited", err: supporter.ErrRateLimited, status: http.StatusTooManyRequests},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockSupporter.EXPECT().PostMessage(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/api/v1/supporters", postSupporterRequest{Name: "Fan", Message: "hi"}, nil)
			s.Equal(tc.status, rec.Code)
		})
	}
}

func (s *ServerTestSuite) TestListSupporters() {
	s.mockSupporter.EXPECT().
		ListMessages(gomock.Any(), &supporter.ListMessagesInput{Limit: 10}).
		Return(&supporter.ListMessagesOutput{Messages: []*models.SupporterMessage{
			{ID: "m2", Name: "Mom", Message: "Proud", AuthorID: "moms-browser"},
			{ID: "m1", Name: "Dad", Message: "Go!", AuthorID: "dads-browser"},
		}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/supporters?limit=10", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "author_id")
	s.NotContains(rec.Body.String(), "moms-browser")

	var resp supportersResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Messages, 2)
	s.Equal("m2", resp.Messages[0].ID)
	s.Equal("Proud", resp.Messages[0].Message)
}

// TestSupporterBoardOwnership runs the real supporter service over miniredis
func (s *ServerTestSuite) TestSupporterBoardOwnership() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := supporterRepo.NewRedis(&supporterRepo.Config{RedisClient: client})
	s.Require().NoError(err)

	board, err := supporter.New(&supporter.Config{
		Repository:    repo,
		Clock:         s.mockClock,
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	server, err := New(&Config{
		GameService:      s.mockGame,
		SupporterService: board,
		Clock:            s.mockClock,
		Burst:            100,
	})
	s.Require().NoError(err)
	s.handler = server.Handler()

	rec := s.do(http.MethodPost, "/api/v1/supporters", postSupporterRequest{Name: "Mom", Message: "Proud of you"}, map[string]string{supporterIDHeader: "moms-browser-secret"})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var posted postSupporterResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &posted))

	rec = s.do(http.MethodPost, "/api/v1/supporters", postSupporterRequest{Name: "Dad", Message: "Go!"}, nil)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var anonymous postSupporterResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &anonymous))
	s.NotEmpty(anonymous.SupporterID)

	rec = s.do(http.MethodGet, "/api/v1/supporters", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.NotContains(body, "author_id")
	s.NotContains(body, "moms-browser-secret")
	s.NotContains(body, anonymous.SupporterID)
	s.NotContains(body, "192.0.2.1")

	path := "/api/v1/supporters/" + posted.Message.ID
	rec = s.do(http.MethodDelete, path, nil, map[string]string{supporterIDHeader: anonymous.SupporterID})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, path, nil, nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, path, nil, map[string]string{supporterIDHeader: "moms-browser-secret"})
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/supporters/"+anonymous.Message.ID, nil, map[string]string{supporterIDHeader: anonymous.SupporterID})
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestDeleteSupporter() {
	s.mockSupporter.EXPECT().
		DeleteMessage(gomock.Any(), &supporter.DeleteMessageInput{MessageID: "m1", RequesterID: "browser-2"}).
		Return(supporter.ErrNotAuthor)

	rec := s.do(http.MethodDelete, "/api/v1/supporters/m1", nil, map[string]string{supporterIDHeader: "browser-2"})
	s.Equal(http.StatusForbidden, rec.Code)

	token := s.login()
	s.mockSupporter.EXPECT().
		DeleteMessage(gomock.Any(), &supporter.DeleteMessageInput{MessageID: "m1", IsAdmin: true}).
		Return(nil)

	rec = s.do(http.MethodDelete, "/api/v1/supporters/m1", nil, map[string]string{"Authorization": "Bearer " + token})
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestRateLimit() {
	server, err := New(&Config{
		GameService:      s.mockGame,
		SupporterService: s.mockSupporter,
		Clock:            s.mockClock,
		Burst:            1,
	})
	s.Require().NoError(err)
	handler := server.Handler()

	s.mockGame.EXPECT().GetPace(gomock.Any(), gomock.Any()).Return(&game.GetPaceOutput{Pace: &game.PaceReport{}}, nil)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/players/player-1/pace", nil))
	s.Equal(http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/players/player-1/pace", nil))
	s.Equal(http.StatusTooManyRequests, second.Code)
}

func (s *ServerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{SupporterService: s.mockSupporter, Clock: s.mockClock})
	s.Error(err)

	_, err = New(&Config{GameService: s.mockGame, SupporterService: s.mockSupporter, Clock: s.mockClock, AdminPasswordHash: "hash"})
	s.Error(err)
}

func TestRecoveryReturns500(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGame := gameMocks.NewMockService(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Now()).AnyTimes()

	server, err := New(&Config{
		GameService:      mockGame,
		SupporterService: supporterMocks.NewMockService(ctrl),
		Clock:            mockClock,
	})
	if err != nil {
		t.Fatal(err)
	}

	mockGame.EXPECT().GetPace(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *game.GetPaceInput) (*game.GetPaceOutput, error) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/players/player-1/pace", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
