package main

import "github.com/rpgo/investment-calculator/cmd"

func main() {
	cmd.Execute()
}
