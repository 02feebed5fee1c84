package main

import "github.com/Omega-Networks/Pulse-sub003/cmd"

func main() {
	cmd.Execute()
}
