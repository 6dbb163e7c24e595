package main

import "market/cmd/marketctl/commands"

func main() {
	commands.Execute()
}
