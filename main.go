// Package main is the entry point for the repkg CLI.
package main

import "repkg.dev/repkg/cmd"

func main() {
	cmd.Execute()
}
