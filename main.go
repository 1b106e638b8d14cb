package main

import "track-manager/cmd"

func main() {
	cmd.Execute()
}
