package main

import "github.com/mateconpizza/pinb/cmd"

func main() {
	cmd.Execute()
}
