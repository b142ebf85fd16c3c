// Command bikerent is the reference driver for the bike rental workflow.
package main

import "github.com/mesh-intelligence/bikerental/internal/cli"

func main() {
	cli.Execute()
}
