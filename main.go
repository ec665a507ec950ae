package main

import "github.com/alexiusacademia/gofea/cmd"

func main() {
	cmd.Execute()
}
