package main

import "xptracker-backend/cmd/xptracker/cmd"

func main() {
	cmd.Execute()
}
