// Command stridecheck runs the stridecheck analyzer.
package main

import (
	"github.com/tsatke/lex/internal/tools/analysis/stridecheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(stridecheck.Analyzer)
}
