// cmd/cpgscan-gen/main.go
package main

import (
	"cpgscan/internal/appshell"
	"cpgscan/internal/genapp"
)

func main() {
	appshell.Main(genapp.RunContext)
}
