package handler

import (
	"context"
	"fmt"

	"github.com/mateconpizza/rotato"

	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/service"
	"github.com/mateconpizza/pinb/internal/ui"
)

// Sync refreshes the local cache from the account.
//
// With force, the cache is rebuilt even if the server reports no
// changes since the last download.
func Sync(c *ui.Console, r *db.SQLite, sy *service.Syncer, force bool) error {
	sp := rotato.New(
		rotato.WithMesg("syncing with the server..."),
		rotato.WithMesgColor(rotato.ColorBrightBlue),
		rotato.WithSpinnerColor(rotato.ColorGray),
	)
	sp.Start()

	ctx := context.Background()

	fresh, err := sy.Refresh(ctx, force)
	sp.Done()

	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if !fresh {
		fmt.Print(c.InfoMesg("already up to date\n"))
		return nil
	}

	n := r.Count(ctx)

	fmt.Print(c.SuccessMesg(fmt.Sprintf("%d bookmark/s in sync\n", n)))

	return nil
}
