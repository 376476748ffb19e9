package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/ledgerkeeper/internal/assets"
	"github.com/dmitrijs2005/ledgerkeeper/internal/ledger"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/messages"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"

	"golang.org/x/term"
)

// isInteractive is a test seam for term.IsTerminal on stdin.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// AssetStore resolves and lists assets.
type AssetStore interface {
	assets.Resolver
	List(ctx context.Context) ([]models.Asset, error)
}

type App struct {
	repo   ledger.Repository
	assets AssetStore
	msgs   *messages.Aggregator
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(repo ledger.Repository, as AssetStore, msgs *messages.Aggregator, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		repo:   repo,
		assets: as,
		msgs:   msgs,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if isInteractive() {
		fmt.Fprintln(a.out, "Ledger CLI (type 'help' for commands)")
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	errs, warnings := a.msgs.Pending()
	if errs+warnings == 0 {
		return ""
	}
	return fmt.Sprintf("(%d errors, %d warnings)", errs, warnings)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail logs err and shows it to the user. It returns err unchanged.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Error(ctx, op+" failed", "error", err)
	a.printf("Error: %v\n", err)
	return err
}
