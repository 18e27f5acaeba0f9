// cmd/cpgscan/main.go
package main

import (
	"cpgscan/internal/app"
	"cpgscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
