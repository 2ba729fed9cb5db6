package supporter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 10, 12, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addMessages(n int) {
	for i := 0; i < n; i++ {
		err := s.repo.AddMessage(s.ctx, &AddMessageInput{Message: &models.SupporterMessage{
			ID:        fmt.Sprintf("msg-%02d", i),
			Name:      "Fan",
			Message:   fmt.Sprintf("Go team %d", i),
			AuthorID:  "test-author-id",
			Timestamp: s.testNow.Add(time.Duration(i) * time.Minute),
		}})
		s.Require().NoError(err)
	}
}

func (s *RedisRepositoryTestSuite) TestAddAndGetMessage() {
	s.addMessages(1)

	message, err := s.repo.GetMessage(s.ctx, &GetMessageInput{MessageID: "msg-00"})
	s.Require().NoError(err)
	s.Equal("Fan", message.Name)
	s.Equal("Go team 0", message.Message)
	s.Equal("test-author-id", message.AuthorID)
	s.True(s.testNow.Equal(message.Timestamp))
}

func (s *RedisRepositoryTestSuite) TestListNewestFirstWithLimit() {
	s.addMessages(5)

	output, err := s.repo.ListMessages(s.ctx, &ListMessagesInput{Limit: 3})
	s.Require().NoError(err)
	s.Require().Len(output.Messages, 3)
	s.Equal("msg-04", output.Messages[0].ID)
	s.Equal("msg-03", output.Messages[1].ID)
	s.Equal("msg-02", output.Messages[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListOrdersMillisecondsApart() {
	// IDs sort the opposite way to time, so a score tie would show up as the wrong order
	first := &models.SupporterMessage{ID: "z-first", Name: "Mom", Message: "One", AuthorID: "test-author-id", Timestamp: s.testNow}
	second := &models.SupporterMessage{ID: "a-second", Name: "Dad", Message: "Two", AuthorID: "test-author-id", Timestamp: s.testNow.Add(time.Millisecond)}
	s.Require().NoError(s.repo.AddMessage(s.ctx, &AddMessageInput{Message: first}))
	s.Require().NoError(s.repo.AddMessage(s.ctx, &AddMessageInput{Message: second}))

	output, err := s.repo.ListMessages(s.ctx, &ListMessagesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(output.Messages, 2)
	s.Equal("a-second", output.Messages[0].ID)
	s.Equal("z-first", output.Messages[1].ID)

	score, err := s.mr.ZScore(boardKey, "a-second")
	s.Require().NoError(err)
	s.Equal(float64(second.Timestamp.UnixMilli()), score)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	output, err := s.repo.ListMessages(s.ctx, &ListMessagesInput{Limit: 50})
	s.Require().NoError(err)
	s.Empty(output.Messages)
}

func (s *RedisRepositoryTestSuite) TestListSkipsDanglingTimelineEntries() {
	s.addMessages(3)
	s.mr.Del(messageKeyPrefix + "msg-01")

	output, err := s.repo.ListMessages(s.ctx, &ListMessagesInput{Limit: 50})
	s.Require().NoError(err)
	s.Require().Len(output.Messages, 2)
	s.Equal("msg-02", output.Messages[0].ID)
	s.Equal("msg-00", output.Messages[1].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteMessage() {
	s.addMessages(2)

	s.Require().NoError(s.repo.DeleteMessage(s.ctx, &DeleteMessageInput{MessageID: "msg-00"}))

	_, err := s.repo.GetMessage(s.ctx, &GetMessageInput{MessageID: "msg-00"})
	s.ErrorIs(err, ErrMessageNotFound)

	output, err := s.repo.ListMessages(s.ctx, &ListMessagesInput{Limit: 50})
	s.Require().NoError(err)
	s.Len(output.Messages, 1)

	err = s.repo.DeleteMessage(s.ctx, &DeleteMessageInput{MessageID: "msg-00"})
	s.ErrorIs(err, ErrMessageNotFound)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	s.Error(s.repo.AddMessage(s.ctx, nil))
	s.Error(s.repo.AddMessage(s.ctx, &AddMessageInput{Message: &models.SupporterMessage{Timestamp: s.testNow}}))
	s.Error(s.repo.AddMessage(s.ctx, &AddMessageInput{Message: &models.SupporterMessage{ID: "x"}}))

	_, err := s.repo.ListMessages(s.ctx, &ListMessagesInput{})
	s.Error(err)
}
