// faucet-lint runs the determinism checks over the packages named on the
// command line, e.g. `faucet-lint ./x/...`.
package main

import (
	"github.com/allora-network/allora-faucet/linter"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(linter.Analyzer)
}
