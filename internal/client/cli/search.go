package cli

import (
	"context"
	"fmt"

	"github.com/sharebox/sharebox/internal/client/guard"
	"github.com/sharebox/sharebox/internal/client/search"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Search runs an incremental folder search. Each line typed becomes the
// newest query; results for superseded queries never print.
func (c *Cli) Search(ctx context.Context) error {
	if err := c.requireView(ctx, guard.ViewSearch); err != nil {
		return err
	}

	suggester := search.NewFolderSuggester(c.api, c.cfg.SearchDebounce, func(query string, folders []pkgapi.Folder) {
		if query == "" {
			return
		}
		fmt.Printf("Results for %q:\n", query)
		c.printFolders(folders)
	})
	defer suggester.Close()

	fmt.Println("Type a query; an empty line quits.")
	for {
		query, ok, err := c.dialogs.Prompt(ctx, "Search", "Query")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		suggester.Input(ctx, query)
	}
}
