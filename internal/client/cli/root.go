package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.userEmail)
}

// Root restores any surviving session, prompts for a login when there is
// none, and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	a.printer.Print("tjslctl admin console (type 'help' for commands)")

	a.restoreSession(ctx)
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
