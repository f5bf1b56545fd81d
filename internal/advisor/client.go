package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/config"
)

var ErrEmptyCompletion = errors.New("model returned an empty completion")

// Client implements IAdvisor against the OpenAI chat completion API.
type Client struct {
	openai *openai.Client
	model  string
}

func NewClient(env *config.Config) *Client {
	return &Client{
		openai: openai.NewClient(env.OpenAIKey),
		model:  openai.GPT4oMini,
	}
}

// Chat answers one turn of an advice conversation. The overview is embedded
// in the system prompt so the model only ever sees this user's data.
func (c *Client) Chat(ctx context.Context, overview *FinanceOverview, history []Message, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: chatSystemPrompt(overview),
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.openai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		logrus.WithError(err).Error("advisor.Client.Chat")
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// PredictExpenses asks the model for a per-month spending forecast derived
// from the overview's recent transactions.
func (c *Client) PredictExpenses(ctx context.Context, overview *FinanceOverview) ([]MonthForecast, error) {
	resp, err := c.openai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: predictSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: financeContext(overview),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logrus.WithError(err).Error("advisor.Client.PredictExpenses")
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	var parsed struct {
		Predictions []MonthForecast `json:"predictions"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("parsing forecast response: %w", err)
	}
	return parsed.Predictions, nil
}

const predictSystemPrompt = `You are a financial forecasting assistant. Given a user's recent ` +
	`transactions, predict their total spending for each of the next three calendar months. ` +
	`Respond with JSON only, in the shape ` +
	`{"predictions":[{"month":"YYYY-MM","predicted":0.00}]}.`

func chatSystemPrompt(overview *FinanceOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a personal finance advisor for %s. ", overview.UserName)
	b.WriteString("Answer questions about their finances using the data below. " +
		"Be concise and practical. Format your answers in markdown. " +
		"Amounts are in " + overview.Currency + ".\n\n")
	b.WriteString(financeContext(overview))
	return b.String()
}

func financeContext(overview *FinanceOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Net worth: %s\n\nAccounts:\n", overview.NetWorth.StringFixed(2))
	for _, a := range overview.Accounts {
		fmt.Fprintf(&b, "- %s (%s): %s\n", a.Name, a.Type, a.Balance.StringFixed(2))
	}
	b.WriteString("\nRecent transactions:\n")
	for _, t := range overview.RecentTransactions {
		fmt.Fprintf(&b, "- %s | %s | %s | %s\n",
			t.Date.Format("2006-01-02"), t.Category, t.Description, t.Amount.StringFixed(2))
	}
	return b.String()
}
