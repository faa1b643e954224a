package redactor

import "github.com/scrublish/scrublish/pkg/types"

// RedactSession applies Redact to every textual field of a conversation:
// turn content, optional thinking text, and each tool call's input summary
// and result. The input is never mutated; a redacted copy is returned along
// with the aggregate redaction count and category list. When redaction is
// disabled the original reference is returned unchanged.
func RedactSession(conv *types.Conversation, opts Options) (*types.Conversation, int, []string) {
	if conv == nil || !opts.Enabled {
		return conv, 0, nil
	}

	total := 0
	var categories []string
	seen := make(map[string]bool)
	apply := func(text string) string {
		result := Redact(text, opts)
		total += result.RedactedCount
		for _, c := range result.Types {
			if !seen[c] {
				seen[c] = true
				categories = append(categories, c)
			}
		}
		return result.Text
	}

	out := *conv
	out.Turns = make([]types.Turn, len(conv.Turns))
	for i, turn := range conv.Turns {
		redacted := turn
		redacted.Content = apply(turn.Content)
		if turn.Thinking != "" {
			redacted.Thinking = apply(turn.Thinking)
		}

		if len(turn.ToolCalls) > 0 {
			redacted.ToolCalls = make([]types.ToolCall, len(turn.ToolCalls))
			for j, call := range turn.ToolCalls {
				redactedCall := call
				redactedCall.InputSummary = apply(call.InputSummary)
				if call.Result != "" {
					redactedCall.Result = apply(call.Result)
				}
				redacted.ToolCalls[j] = redactedCall
			}
		}

		out.Turns[i] = redacted
	}

	return &out, total, categories
}
