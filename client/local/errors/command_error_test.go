package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"

	lerrors "github.com/goto/repoctl/client/local/errors"
)

func TestCmdError(t *testing.T) {
	t.Run("auth error carries exit code 1", func(t *testing.T) {
		err := lerrors.NewAuthErrorf("login failed: %d - %s", 401, "Bad credentials")

		assert.Equal(t, 1, err.Code)
		assert.EqualError(t, err, "login failed: 401 - Bad credentials")
	})
	t.Run("interrupted error carries exit code 130 and unwraps", func(t *testing.T) {
		err := lerrors.NewInterruptedError(terminal.InterruptErr)

		assert.Equal(t, 130, err.Code)
		assert.ErrorIs(t, err, terminal.InterruptErr)
	})
	t.Run("is found through wrapping", func(t *testing.T) {
		err := fmt.Errorf("running shell: %w", lerrors.NewCmdError(errors.New("boom"), 3))

		var cmdErr *lerrors.CmdError
		assert.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 3, cmdErr.Code)
	})
}
