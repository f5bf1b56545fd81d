package transaction

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	AccountID   string `json:"accountID" doc:"Account UUID"`
	Category    string `json:"category" doc:"Category name"`
	Amount      string `json:"amount" doc:"Signed decimal amount, negative for outflows"`
	Description string `json:"description" doc:"Description of the transaction"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}
