package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/questionnaire/internal/cmd"
	"github.com/felixgeelhaar/questionnaire/internal/console"
	"github.com/felixgeelhaar/questionnaire/internal/exitcode"
	"github.com/felixgeelhaar/questionnaire/internal/ux"
)

func main() {
	// Cancel running questionnaires on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nQuestionnaire cancelled")
			exitcode.Exit(exitcode.Interrupted)
		}
		if stderrors.Is(err, console.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Questionnaire aborted, nothing was submitted")
			exitcode.Exit(exitcode.Aborted)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", ux.EnhanceError(err))
		exitcode.ExitWithError(err)
	}
	exitcode.Exit(exitcode.Success)
}
