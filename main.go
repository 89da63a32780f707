package main

import (
	"fmt"
	"os"

	"github.com/shaharia-lab/reskin/cmd"
	"github.com/shaharia-lab/reskin/internal/cli"
)

var version = "0.0.1"
var commit = "none"
var date = "unknown"

func main() {
	container, err := cli.NewContainer(cli.InitOptions{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during initialization: %v\n", err)
		os.Exit(1)
	}

	log := container.Logger
	log.Infof("%s started", container.Config.Name)

	rootCmd := cmd.NewRootCmd(container)
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%s exited with error: %v", container.Config.Name, err)
		container.Close()
		os.Exit(1)
	}

	log.Infof("%s exited successfully", container.Config.Name)
	container.Close()
}
