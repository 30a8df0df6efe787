package survey

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// MenuSurvey reads the menu choice as free text so that invalid choices reach the shell.
type MenuSurvey struct{}

func NewMenuSurvey() *MenuSurvey {
	return &MenuSurvey{}
}

func (*MenuSurvey) AskChoice() (string, error) {
	var choice string
	if err := survey.AskOne(&survey.Input{
		Message: "Enter your choice:",
	}, &choice); err != nil {
		return "", err
	}
	return strings.TrimSpace(choice), nil
}
