package advice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/advisor"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// ChatMessage is one prior turn of the conversation in the request body.
type ChatMessage struct {
	Role    string `json:"role" required:"true" enum:"user,assistant" doc:"Who sent the message"`
	Content string `json:"content" required:"true" doc:"Message text"`
}

// ChatBody is the request body for an advice chat turn.
type ChatBody struct {
	Message string        `json:"message" required:"true" minLength:"1" doc:"The user's question"`
	History []ChatMessage `json:"history,omitempty" doc:"Prior turns, oldest first"`
}

// ChatInput is the Huma input for an advice chat turn.
type ChatInput struct {
	Body ChatBody
}

// ChatResponseBody is the response body for an advice chat turn.
type ChatResponseBody struct {
	Reply string `json:"reply" doc:"The advisor's markdown reply"`
}

// ChatOutput is the Huma output for an advice chat turn.
type ChatOutput struct {
	Body ChatResponseBody
}

// overviewBuilder is the interface for assembling a user's finance snapshot.
type overviewBuilder interface {
	Overview(ctx context.Context, userID, userName string) (*advisor.FinanceOverview, error)
}

// ChatHandler handles POST /v1/advice/chat.
type ChatHandler struct {
	FinanceService overviewBuilder
	Advisor        advisor.IAdvisor
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc overviewBuilder, adv advisor.IAdvisor) *ChatHandler {
	return &ChatHandler{FinanceService: svc, Advisor: adv}
}

// Register registers the chat endpoint with the Huma API.
func (h *ChatHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "advice-chat",
		Method:      http.MethodPost,
		Path:        "/v1/advice/chat",
		Summary:     "Ask the advisor",
		Description: "Answers one turn of a finance conversation grounded in the caller's own ledger.",
		Tags:        []string{"Advice"},
	}, h.handle)
}

func (h *ChatHandler) handle(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := h.FinanceService.Overview(ctx, session.UserID, session.Name)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build finance overview", err)
	}

	history := make([]advisor.Message, len(input.Body.History))
	for i, m := range input.Body.History {
		history[i] = advisor.Message{Role: m.Role, Content: m.Content}
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("advisorChatMs")
	}
	reply, err := h.Advisor.Chat(ctx, overview, history, input.Body.Message)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "advisor unavailable", err)
	}

	return &ChatOutput{Body: ChatResponseBody{Reply: reply}}, nil
}
