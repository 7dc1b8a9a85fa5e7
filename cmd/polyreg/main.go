package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/polyserde"
	"github.com/suparena/polyserde/processor"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := polyserde.GetVersionInfo()
		fmt.Printf("polyserde polyreg version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	processor.Main()
}
