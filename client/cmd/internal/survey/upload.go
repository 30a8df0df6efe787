package survey

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// UploadSurvey defines the questions asked while uploading content
type UploadSurvey struct{}

func NewUploadSurvey() *UploadSurvey {
	return &UploadSurvey{}
}

func (*UploadSurvey) AskLocalPath() (string, error) {
	var path string
	if err := survey.AskOne(&survey.Input{
		Message: "Enter local path to file or folder:",
	}, &path, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

// Confirm asks whether an existing remote file should be overwritten
func (*UploadSurvey) Confirm(message string) (bool, error) {
	var result bool
	if err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: false,
	}, &result); err != nil {
		return false, err
	}
	return result, nil
}
