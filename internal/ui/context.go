package ui

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	contextMu      sync.RWMutex
	nonInteractive bool
)

// SetNonInteractive disables prompts and spinners.
// The CLI calls this for --non-interactive or when DCF_NON_INTERACTIVE is set.
func SetNonInteractive(value bool) {
	contextMu.Lock()
	defer contextMu.Unlock()
	nonInteractive = value
}

// IsInteractive reports whether forms may be shown: the flag is unset and stdin is a TTY.
func IsInteractive() bool {
	contextMu.RLock()
	defer contextMu.RUnlock()

	if nonInteractive {
		return false
	}
	return isTerminal(os.Stdin)
}

// StdoutIsTerminal reports whether animated output can be drawn.
func StdoutIsTerminal() bool {
	contextMu.RLock()
	defer contextMu.RUnlock()
	return !nonInteractive && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
