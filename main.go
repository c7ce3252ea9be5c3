package main

import (
	"fmt"
	"os"

	"caixa/console"

	"go.uber.org/zap"
)

func main() {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Errorf("error building logger: %v", err))
	}
	defer logger.Sync()

	menu := console.InitMenu(os.Stdin, os.Stdout, console.Config{ClearScreen: true}, logger)
	if err := menu.Run(); err != nil {
		panic(fmt.Errorf("error running menu: %v", err))
	}
}
