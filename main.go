package main

import "github.com/dkravets/unit-roster/cmd"

func main() {
	cmd.Execute()
}
