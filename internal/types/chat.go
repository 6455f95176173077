package types

// ToolCall is one action the chat layer decided to perform.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolResult reports the outcome of executing a single tool call.
type ToolResult struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok, dry_run, duplicate, error, unknown_tool
	Error  string `json:"error,omitempty"`
}

// ChatRequest represents the request body for the rule-based chat endpoint.
type ChatRequest struct {
	UserMessage    string `json:"user_message" binding:"required"`
	Date           string `json:"date"` // YYYY-MM-DD, defaults to today
	DryRun         bool   `json:"dry_run"`
	IdempotencyKey string `json:"idempotency_key"`
}

// ChatResponse is the full chat result: actions taken, day state and a
// short synthesized message.
type ChatResponse struct {
	Actions    []ToolCall       `json:"actions"`
	Results    []ToolResult     `json:"results"`
	Totals     DailyTotals      `json:"totals"`
	Targets    DailyTargets     `json:"targets"`
	Suggestion SuggestionResult `json:"suggestion"`
	Message    string           `json:"message"`
}
