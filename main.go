package main

import "eon-tracker.com/eon-tracker/cmd"

func main() {
	cmd.Execute()
}
