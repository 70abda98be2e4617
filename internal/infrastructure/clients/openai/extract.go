package openai

import "encoding/json"

// The endpoint returns its payload in different shapes depending on the API
// variant. Each extractor is a pure function probing one known location for
// the textual JSON answer; they are tried in priority order and the first
// non-empty match wins.
type extractor func(raw map[string]interface{}) string

var textExtractors = []extractor{
	extractOutputBlocks,
	extractChatChoice,
	extractTopLevelText,
}

// extractText probes all known response shapes. When none match it
// serializes the raw response so the validator can still attempt parsing
// and fail with a clear diagnostic.
func extractText(raw map[string]interface{}) string {
	for _, extract := range textExtractors {
		if text := extract(raw); text != "" {
			return text
		}
	}
	if data, err := json.Marshal(raw); err == nil {
		return string(data)
	}
	return ""
}

// extractOutputBlocks handles the responses-API shape: a nested output
// array with typed content blocks.
func extractOutputBlocks(raw map[string]interface{}) string {
	output, ok := raw["output"].([]interface{})
	if !ok {
		return ""
	}
	for _, item := range output {
		block, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		content, ok := block["content"].([]interface{})
		if !ok {
			continue
		}
		for _, c := range content {
			part, ok := c.(map[string]interface{})
			if !ok {
				continue
			}
			if part["type"] == "output_text" {
				if text, ok := part["text"].(string); ok && text != "" {
					return text
				}
			}
		}
	}
	return ""
}

// extractChatChoice handles the chat-completions shape.
func extractChatChoice(raw map[string]interface{}) string {
	choices, ok := raw["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return ""
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return ""
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return ""
	}
	text, _ := message["content"].(string)
	return text
}

// extractTopLevelText handles variants exposing the answer as a direct
// text field.
func extractTopLevelText(raw map[string]interface{}) string {
	if text, ok := raw["output_text"].(string); ok && text != "" {
		return text
	}
	text, _ := raw["text"].(string)
	return text
}
