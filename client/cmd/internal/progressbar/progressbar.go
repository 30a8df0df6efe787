package progressbar

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

const spinnerCharSet = 14

// ProgressBar shows a spinner while a remote call is in flight. It stays silent when stdout
// is not a terminal so that piped output is not cluttered.
type ProgressBar struct {
	spinner *spinner.Spinner
	enabled bool
}

func NewProgressBar() *ProgressBar {
	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(os.Stdout))
	return &ProgressBar{
		spinner: s,
		enabled: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func (p *ProgressBar) Start(msg string) {
	if !p.enabled {
		return
	}
	p.spinner.Suffix = " " + msg
	p.spinner.Start()
}

func (p *ProgressBar) Stop() {
	if !p.enabled {
		return
	}
	p.spinner.Stop()
}
