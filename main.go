package main

import "github.com/samuelfneumann/zonelearn/cmd"

func main() {
	cmd.Execute()
}
