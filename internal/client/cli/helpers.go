package cli

import (
	"fmt"
	"strconv"

	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

func parseID(arg string) (pkgapi.ID, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return pkgapi.ID(n), nil
}
