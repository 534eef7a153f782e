package main

import "leaguedash/internal/cli"

func main() {
	cli.Execute()
}
