package main

import (
	"errors"
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	clientCmd "github.com/goto/repoctl/client/cmd"
	lerrors "github.com/goto/repoctl/client/local/errors"
)

const DefaultExitCode = 1

//nolint:forbidigo
func main() {
	command := clientCmd.New()

	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		Exit(err)
	}
}

func Exit(err error) {
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var cmdErr *lerrors.CmdError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return DefaultExitCode
}
