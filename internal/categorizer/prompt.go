package categorizer

import (
	"fmt"
	"strings"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
)

var instructions = buildInstructions()

func buildInstructions() string {
	var sb strings.Builder
	sb.WriteString("You are an event categorization assistant. Classify the event into exactly one of these categories:\n")
	for _, c := range domain.Categories() {
		sb.WriteString("- ")
		sb.WriteString(string(c))
		sb.WriteString("\n")
	}
	sb.WriteString("\nRespond with only the category name, exactly as written above, and nothing else.")
	return sb.String()
}

// Instructions returns the fixed system prompt listing the taxonomy.
func Instructions() string {
	return instructions
}

// UserContent formats the event for the classification request.
func UserContent(title, location string) string {
	return fmt.Sprintf("Title: %s\nLocation: %s\n\nWhich category fits best?", title, location)
}
