package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/gameday/internal/models"
	"github.com/KirkDiggler/gameday/internal/services/supporter"
)

// supporterIDHeader carries the anonymous author identity a browser keeps for its own messages.
// It is a secret between the browser and the server and never appears on the public board.
const supporterIDHeader = "X-Supporter-ID"

type postSupporterRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// supporterMessageResponse is the public view of a message, without its author
type supporterMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type supportersResponse struct {
	Messages []supporterMessageResponse `json:"messages"`
}

// postSupporterResponse hands the poster the ID that lets them delete the message later
type postSupporterResponse struct {
	Message     supporterMessageResponse `json:"message"`
	SupporterID string                   `json:"supporter_id"`
}

func toSupporterMessageResponse(m *models.SupporterMessage) supporterMessageResponse {
	return supporterMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Message:   m.Message,
		Timestamp: m.Timestamp,
	}
}

func (s *Server) listSupporters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "Query parameter 'limit' must be a positive number")
			return
		}
		limit = parsed
	}

	output, err := s.supporterService.ListMessages(ctx, &supporter.ListMessagesInput{Limit: limit})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	messages := make([]supporterMessageResponse, 0, len(output.Messages))
	for _, m := range output.Messages {
		messages = append(messages, toSupporterMessageResponse(m))
	}

	respondWithJSON(w, http.StatusOK, supportersResponse{Messages: messages})
}

func (s *Server) postSupporter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	var req postSupporterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	authorID := r.Header.Get(supporterIDHeader)
	if authorID == "" {
		authorID = s.uuidGenerator.NewUUID()
	}

	output, err := s.supporterService.PostMessage(ctx, &supporter.PostMessageInput{
		Name:     req.Name,
		Message:  req.Message,
		AuthorID: authorID,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, postSupporterResponse{
		Message:     toSupporterMessageResponse(output.Message),
		SupporterID: authorID,
	})
}

func (s *Server) deleteSupporter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	err := s.supporterService.DeleteMessage(ctx, &supporter.DeleteMessageInput{
		MessageID:   mux.Vars(r)["messageID"],
		RequesterID: r.Header.Get(supporterIDHeader),
		IsAdmin:     s.isAdminRequest(r),
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
