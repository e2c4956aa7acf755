package main

import "github.com/tessro/playbar/internal/cli"

func main() {
	cli.Execute()
}
