package request

import (
	"fmt"
	"strings"
)

type AddRuleRequest struct {
	UserID   string `json:"user_id"`
	RuleID   string `json:"rule_id"`
	RuleText string `json:"rule_text"`
}

func (r *AddRuleRequest) Validate() error {
	if err := required("user_id", r.UserID); err != nil {
		return err
	}
	if err := required("rule_id", r.RuleID); err != nil {
		return err
	}
	return required("rule_text", r.RuleText)
}

type UpdateRuleRequest struct {
	UserID   string `json:"user_id"`
	RuleText string `json:"rule_text"`
}

func (r *UpdateRuleRequest) Validate() error {
	if err := required("user_id", r.UserID); err != nil {
		return err
	}
	return required("rule_text", r.RuleText)
}

type ModerateRequest struct {
	UserID         string `json:"user_id"`
	TextToModerate string `json:"text_to_moderate"`
}

func (r *ModerateRequest) Validate() error {
	if err := required("user_id", r.UserID); err != nil {
		return err
	}
	return required("text_to_moderate", r.TextToModerate)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
