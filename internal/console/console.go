// Package console implements the optional "press Enter" pause before the
// CLI exits.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/go-tangra/go-tangra-sysindicator/internal/config"
)

const prompt = "Press Enter to continue..."

// ShouldPause reports whether the process should wait for the user before
// exiting. In auto mode it pauses only when stdin and stdout are terminals
// and the console window belongs to this process alone, which is the case
// when the binary was started from a file manager on Windows.
func ShouldPause(mode string) bool {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	return decide(mode, interactive, ownsConsole)
}

func decide(mode string, interactive bool, owns func() bool) bool {
	switch mode {
	case config.PauseAlways:
		return true
	case config.PauseAuto:
		return interactive && owns()
	default:
		return false
	}
}

// Pause prints the prompt to w and blocks until a line (or EOF) is read
// from r.
func Pause(r io.Reader, w io.Writer) error {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return err
	}
	_, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}
