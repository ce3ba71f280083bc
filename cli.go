//go:build cli
// +build cli

package main

import (
	"github.com/hhyeonhee/ULTRA/cmd"
	"github.com/hhyeonhee/ULTRA/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
