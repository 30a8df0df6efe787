package version

import (
	"github.com/goto/salt/log"
	"github.com/goto/salt/version"
	"github.com/spf13/cobra"

	"github.com/goto/repoctl/client/cmd/internal/logger"
	"github.com/goto/repoctl/config"
)

const githubRepo = "goto/repoctl"

type versionCommand struct {
	logger log.Logger
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	v := &versionCommand{
		logger: logger.NewClientLogger(config.DefaultLogLevel),
	}

	return &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "repoctl version",
		RunE:    v.RunE,
	}
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info("Client: %s-%s (built %s)", config.BuildVersion, config.BuildCommit, config.BuildDate)

	// Print version update if new version is exist
	if updateNotice := version.UpdateNotice(config.BuildVersion, githubRepo); updateNotice != "" {
		v.logger.Info(updateNotice)
	}
	return nil
}
