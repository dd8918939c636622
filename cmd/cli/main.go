// lintpath - file discovery for lint-style tools
//
// lintpath resolves path and glob patterns into the deduplicated, ordered
// list of files a downstream tool should process, respecting default and
// custom ignore rules.
package main

import (
	"os"

	"github.com/suuzee/lintpath/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
