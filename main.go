// Package main is the entry point for the pharmactl application.
// It provides terminal access to the Pharmav2 pharmacy network backend.
package main

import "github.com/naimlawani01/pharmav2-dashboard/cmd"

func main() {
	cmd.Execute()
}
