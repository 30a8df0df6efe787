package survey

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// AskToken asks for the access token without echoing it
func AskToken() (string, error) {
	var token string
	if err := survey.AskOne(&survey.Password{
		Message: "Enter your GitHub personal access token:",
	}, &token, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}
