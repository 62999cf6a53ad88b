package gemini

import (
	"fmt"
	"strings"
)

// IntentSystemPrompt is the instruction for the task/meeting intent check.
// The response protocol is strictly line-based: the first line must be YES
// or NO; on YES every following line is the task description. Parsing of
// this convention lives in the assistant usecase and nowhere else.
const IntentSystemPrompt = `You are a task detection assistant. Decide whether the user's message asks the assistant's owner to do something later: a follow-up, a reminder, a request to get in touch, a meeting or a call.

RULES:
1. The FIRST line of your reply must be exactly YES or NO. Nothing else on that line.
2. If YES, write a short one-sentence task description on the following lines.
3. Questions about the owner's skills, projects or background are NOT tasks.
4. Use the recent conversation only to resolve references like "that" or "it".`

// TopicSystemPrompt asks for a short label of the conversation subject.
const TopicSystemPrompt = `Summarize what this conversation is about in 3 to 5 words. Reply with only the topic phrase, no punctuation, no explanation.`

// BuildIntentPrompt assembles the classification prompt from the current
// question plus raw recent turns as supplementary context.
func BuildIntentPrompt(question string, history []string) string {
	var sb strings.Builder
	sb.WriteString(IntentSystemPrompt)
	if len(history) > 0 {
		sb.WriteString("\n\nRecent conversation:\n")
		for _, line := range history {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\nUser message: ")
	sb.WriteString(question)
	return sb.String()
}

// BuildTopicPrompt assembles the topic-extraction prompt from the
// speaker-labeled trailing window and the current question.
func BuildTopicPrompt(window []string, question string) string {
	var sb strings.Builder
	sb.WriteString(TopicSystemPrompt)
	sb.WriteString("\n\nConversation:\n")
	for _, line := range window {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("Visitor: ")
	sb.WriteString(question)
	return sb.String()
}

// AnswerPromptInput collects the grounding material for the final answer.
type AnswerPromptInput struct {
	OwnerName      string
	Knowledge      string   // owner's free-text knowledge prompt
	DailyTasks     string   // owner's daily agenda, may be empty
	Contributions  []string // approved Q&A pairs, pre-formatted
	History        []string // speaker-labeled trailing window
	Topic          string   // extracted topic, may be empty
	StyleDirective string   // owner's response-style prompt
	Question       string
}

// BuildAnswerPrompt assembles the grounded answer-generation prompt.
func BuildAnswerPrompt(in AnswerPromptInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s's personal AI assistant. Answer based on the details below. If a question is unrelated to them, say you don't have that information and invite the visitor to contribute an answer.\n", in.OwnerName)

	fmt.Fprintf(&sb, "\nHere is %s's latest data:\n%s\n", in.OwnerName, in.Knowledge)

	if in.DailyTasks != "" {
		fmt.Fprintf(&sb, "\nToday's agenda:\n%s\n", in.DailyTasks)
	}

	if len(in.Contributions) > 0 {
		sb.WriteString("\nCommunity-contributed knowledge base:\n")
		for i, qa := range in.Contributions {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, qa)
		}
	}

	if len(in.History) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, line := range in.History {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	if in.Topic != "" {
		fmt.Fprintf(&sb, "\nCurrent topic: %s\n", in.Topic)
	}

	if in.StyleDirective != "" {
		sb.WriteString("\n")
		sb.WriteString(in.StyleDirective)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nQuestion: %s\n", in.Question)
	return sb.String()
}
