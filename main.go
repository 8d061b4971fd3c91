package main

import (
	"github.com/volgavod/slist/app"
	_ "github.com/volgavod/slist/app/check"
)

var (
	version = "dev/unknown"
)

func main() {
	rootCmd := app.RootCmd()
	rootCmd.Version = version
	rootCmd.Execute()
}
