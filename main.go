package main

import "github.com/alexiusacademia/gogeo/cmd"

func main() {
	cmd.Execute()
}
