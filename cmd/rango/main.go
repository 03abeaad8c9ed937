package main

import "github.com/xy-planning-network/rango/cmd/rango/commands"

func main() {
	commands.Execute()
}
