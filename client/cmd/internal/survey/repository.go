package survey

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// RepositorySurvey defines the questions asked to create and delete repositories
type RepositorySurvey struct{}

func NewRepositorySurvey() *RepositorySurvey {
	return &RepositorySurvey{}
}

// AskNewRepository asks the name and visibility of the repository to create
func (*RepositorySurvey) AskNewRepository() (string, bool, error) {
	questions := []*survey.Question{
		{
			Name: "Name",
			Prompt: &survey.Input{
				Message: "Enter new repository name:",
			},
			Validate:  survey.Required,
			Transform: survey.TransformString(strings.TrimSpace),
		},
		{
			Name: "Private",
			Prompt: &survey.Confirm{
				Message: "Private repository?",
				Default: false,
			},
		},
	}

	answers := struct {
		Name    string
		Private bool
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return "", false, err
	}
	return answers.Name, answers.Private, nil
}

func (*RepositorySurvey) AskRepositoryName(message string) (string, error) {
	var name string
	if err := survey.AskOne(&survey.Input{
		Message: message,
	}, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// Ask reads a free text answer, used for typed confirmations
func (*RepositorySurvey) Ask(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{
		Message: message,
	}, &answer); err != nil {
		return "", err
	}
	return answer, nil
}
