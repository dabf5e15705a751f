package main

import "github.com/alexiusacademia/gocba/cmd"

func main() {
	cmd.Execute()
}
