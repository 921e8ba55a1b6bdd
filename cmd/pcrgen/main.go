// cmd/pcrgen/main.go
package main

import (
	"pcrgen/internal/appshell"
	"pcrgen/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
