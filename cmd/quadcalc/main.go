// cmd/quadcalc/main.go
package main

import (
	"quadcalc/internal/app"
	"quadcalc/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
