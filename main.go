package main

import (
	"github.com/lehigh-university-libraries/authorblock/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/authorblock/format/csv"
	_ "github.com/lehigh-university-libraries/authorblock/format/email"
	_ "github.com/lehigh-university-libraries/authorblock/format/latex"
	_ "github.com/lehigh-university-libraries/authorblock/format/manifest"
)

func main() {
	cmd.Execute()
}
