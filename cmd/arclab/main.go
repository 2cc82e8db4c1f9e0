package main

import "github.com/osse101/ArcLab_Go/internal/cli"

func main() {
	cli.Execute()
}
