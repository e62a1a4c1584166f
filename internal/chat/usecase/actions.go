package usecase

import (
	"regexp"
	"strings"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

// actionPattern matches the structured directives the system prompt asks the
// model to emit. Unknown action types deliberately do not match and stay in
// the visible reply.
var actionPattern = regexp.MustCompile(`\[ACTION:(FORM_REQUEST|CALCULATION|VERIFICATION):([^\]]+)\]`)

// parseActions extracts action tags from model output and returns the reply
// with the tags stripped. Output without tags passes through untouched.
func parseActions(content string) (string, []model.Action) {
	matches := actionPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	actions := make([]model.Action, 0, len(matches))
	for _, m := range matches {
		actions = append(actions, model.Action{
			Type:    model.ActionType(m[1]),
			Payload: strings.TrimSpace(m[2]),
		})
	}

	cleaned := strings.TrimSpace(actionPattern.ReplaceAllString(content, ""))
	return cleaned, actions
}
