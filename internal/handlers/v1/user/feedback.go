package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// SubmitFeedbackBody is the request body for submitting feedback.
type SubmitFeedbackBody struct {
	Message string `json:"message" required:"true" minLength:"1" maxLength:"4000" doc:"Free-text feedback"`
}

// SubmitFeedbackInput is the Huma input for submitting feedback.
type SubmitFeedbackInput struct {
	Body SubmitFeedbackBody
}

// SubmitFeedbackOutput is the Huma output for submitting feedback.
type SubmitFeedbackOutput struct {
	Status int
}

// SubmitFeedbackHandler handles POST /v1/user/feedback.
type SubmitFeedbackHandler struct {
	Operator operator.IOperator
}

// NewSubmitFeedbackHandler creates a new SubmitFeedbackHandler.
func NewSubmitFeedbackHandler(op operator.IOperator) *SubmitFeedbackHandler {
	return &SubmitFeedbackHandler{Operator: op}
}

// Register registers the feedback endpoint with the Huma API.
func (h *SubmitFeedbackHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "submit-feedback",
		Method:      http.MethodPost,
		Path:        "/v1/user/feedback",
		Summary:     "Submit feedback",
		Description: "Stores a free-text feedback message from the caller.",
		Tags:        []string{"User"},
	}, h.handle)
}

func (h *SubmitFeedbackHandler) handle(ctx context.Context, input *SubmitFeedbackInput) (*SubmitFeedbackOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.SubmitFeedback{
		UserID:  session.UserID,
		Message: input.Body.Message,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to submit feedback")
	}

	return &SubmitFeedbackOutput{Status: http.StatusCreated}, nil
}
