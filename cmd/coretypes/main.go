package main

import "coretypes/internal/cli"

func main() {
	cli.Execute()
}
