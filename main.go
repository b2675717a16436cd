package main

import "github.com/revsim/debt-projector/cmd"

func main() {
	cmd.Execute()
}
