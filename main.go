// Package main is the entry point for the dialogstack demo.
package main

import "github.com/billie-coop/dialogstack/cmd"

func main() {
	cmd.Execute()
}
