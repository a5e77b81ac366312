package main

import (
	"os"

	"github.com/GSMProject-Team/bizzone.kz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
