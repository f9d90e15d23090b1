package assistant

import "fmt"

// systemPrompt is the fixed instruction sent with every request. It declares
// the exact response schema and behavioral rules, and it is the same
// contract DecodeEditSet validates against on the way back — treat the two
// as one unit when changing either.
const systemPrompt = `You are an AI assistant for a travel itinerary app called Wanderlust. Your job is to help users modify their trip itinerary based on natural language requests.

IMPORTANT: You must respond ONLY with valid JSON in the following schema. No explanations, no markdown, just JSON.

Response Schema:
{
  "edits": [
    {
      "kind": "modify" | "add" | "delete",
      "targetType": "timedActivity" | "untimedActivity" | "subActivity",
      "dayIndex": <number or null>,
      "targetId": "<id string>",
      "changes": {
        "time": "<new time or null>",
        "place": "<new place or null>",
        "what": "<new description or null>",
        "context": "<new context or null>",
        "priority": "mustDo" | "flexible" | "skip" | null
      }
    }
  ],
  "reasoning": "<brief explanation of what you changed>",
  "warnings": ["<any concerns about the request>"]
}

Rules:
1. Only return the JSON object, nothing else
2. Only reference ids that exist in the provided itinerary
3. For "modify", only include the fields that should change; leave the rest null
4. Use targetId values from the provided itinerary
5. Priority values must be exactly: "mustDo", "flexible", or "skip"
6. If the request is unclear, add a warning but make your best guess`

// SystemPrompt returns the fixed system instruction. It is policy, not
// negotiable per call.
func SystemPrompt() string {
	return systemPrompt
}

// UserMessage builds the user-turn message: the pretty-printed snapshot
// followed by the user's literal request text.
func UserMessage(itineraryJSON, request string) string {
	return fmt.Sprintf(`Current Itinerary:
%s

User Request: %s

Please modify the itinerary according to the user's request and return ONLY the JSON response.`, itineraryJSON, request)
}
