package main

import "github.com/rpgo/retirement-savings/cmd"

func main() {
	cmd.Execute()
}
