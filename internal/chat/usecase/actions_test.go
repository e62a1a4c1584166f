package usecase

import (
	"testing"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

func TestParseActionsPassthrough(t *testing.T) {
	content := "Your refund should arrive within 21 days."
	cleaned, actions := parseActions(content)
	if cleaned != content {
		t.Errorf("content without tags must pass through, got %q", cleaned)
	}
	if actions != nil {
		t.Errorf("expected no actions, got %v", actions)
	}
}

func TestParseActionsExtractsAndStrips(t *testing.T) {
	content := "Please verify your SSN. [ACTION:VERIFICATION:ssn] Then we can file."
	cleaned, actions := parseActions(content)

	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Type != model.ActionVerification || actions[0].Payload != "ssn" {
		t.Errorf("unexpected action %+v", actions[0])
	}
	if cleaned != "Please verify your SSN.  Then we can file." {
		t.Errorf("unexpected cleaned content %q", cleaned)
	}
}

func TestParseActionsIgnoresUnknownTypes(t *testing.T) {
	content := "[ACTION:ESCALATION:human] plus [ACTION:CALCULATION:agi]"
	cleaned, actions := parseActions(content)

	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Type != model.ActionCalculation {
		t.Errorf("unexpected action %+v", actions[0])
	}
	if cleaned != "[ACTION:ESCALATION:human] plus" {
		t.Errorf("unknown tag should stay in content, got %q", cleaned)
	}
}
