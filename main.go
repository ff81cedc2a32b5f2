/*
Copyright © 2025 LMKidston
*/
package main

import (
	"github.com/LMKidston/meta-agent1/cmd"
	"github.com/LMKidston/meta-agent1/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
