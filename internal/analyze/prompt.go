package analyze

import "fmt"

const contextInstructions = `
IMPORTANT: When analyzing the current meeting transcript below, please:
- Reference previous action items and their current status
- Update task statuses based on progress mentioned in the current meeting
- Mark completed tasks as "completed" in the status field
- Note any follow-up tasks that build on previous work
- Ensure continuity in task tracking across meetings

`

const promptBody = `Please analyze the following meeting transcript and extract the key information in a structured JSON format.

Meeting Transcript:
%s

Please provide your analysis in the following JSON structure:
{
    "summary": "A concise 2-3 sentence summary of the meeting",
    "participants": ["List of participant names mentioned"],
    "key_decisions": ["List of key decisions made during the meeting"],
    "tasks": [
        {
            "task": "Description of the task",
            "assignee": "Person assigned (if mentioned)",
            "due_date": "Due date (if mentioned)",
            "priority": "high/medium/low",
            "status": "assigned/pending/discussed/completed/in-progress"
        }
    ],
    "action_items": ["List of specific action items"],
    "next_meeting": "Next meeting date/time if mentioned",
    "topics_discussed": ["Main topics covered in the meeting"]
}

Focus on extracting concrete, actionable tasks and clear decisions. If information is not explicitly mentioned, use "Not specified" or leave empty arrays as appropriate.
`

const contextReminder = `Remember to track progress on previously assigned tasks and update their status based on the current meeting discussion.
`

// BuildPrompt assembles the generation request. A non-empty context block is
// prefixed together with explicit continuity instructions; without context
// the prompt is identical for every caller, so a history-less team and no
// team at all produce the same request.
func BuildPrompt(transcript, contextBlock string) string {
	prompt := ""
	if contextBlock != "" {
		prompt = contextBlock + "\n" + contextInstructions
	}
	prompt += fmt.Sprintf(promptBody, transcript)
	if contextBlock != "" {
		prompt += contextReminder
	}
	return prompt
}
