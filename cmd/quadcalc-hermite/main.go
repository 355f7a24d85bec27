// cmd/quadcalc-hermite/main.go
package main

import (
	"quadcalc/internal/appshell"
	"quadcalc/internal/hermiteapp"
)

func main() { appshell.Main(hermiteapp.RunContext) }
