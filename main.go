package main

import "github.com/kozaktomas/aerogate/cmd"

func main() {
	cmd.Execute()
}
