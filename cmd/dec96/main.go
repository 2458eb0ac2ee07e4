package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/shabbyrobe/go-dec96/cmd/dec96/command"
)

func main() {
	root := command.New()

	// glog registers its flags on the standard flag set; hand them to cobra.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	_ = flag.Set("logtostderr", "true")

	// Avoid glog's "logging before flag.Parse" complaint.
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := root.Execute(); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}
