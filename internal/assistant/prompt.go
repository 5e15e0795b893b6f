package assistant

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

//go:embed prompt_template.txt
var promptTemplate string

const (
	noLocalContext = "No local context found."
	noWebContext   = "No web results found."
)

// buildPrompt fills the three substitution points of the template. Empty
// context blocks become fixed "none found" markers so the model never
// sees a dangling placeholder.
func buildPrompt(local []models.Document, web []models.WebResult, question string) string {
	localBlocks := make([]string, 0, len(local))
	for _, d := range local {
		localBlocks = append(localBlocks, fmt.Sprintf("%s | %s | %s\n%s", d.Type, d.ID, d.Source, d.Text))
	}
	localContext := strings.Join(localBlocks, "\n\n")
	if localContext == "" {
		localContext = noLocalContext
	}

	webBlocks := make([]string, 0, len(web))
	for _, w := range web {
		webBlocks = append(webBlocks, fmt.Sprintf("%s\n%s\nSource: %s", w.Title, w.Snippet, w.Link))
	}
	webContext := strings.Join(webBlocks, "\n\n")
	if webContext == "" {
		webContext = noWebContext
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{local_context}}", localContext)
	prompt = strings.ReplaceAll(prompt, "{{web_context}}", webContext)
	prompt = strings.ReplaceAll(prompt, "{{question}}", question)
	return prompt
}
