// Package bricks is a falling-block puzzle: an arena where shapes fall, rotate, and settle
// into ground, plus a terminal engine to play it.
package bricks

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell"
)

// Start plays on the terminal until the player quits, logging to logPath when it is not empty
func Start(ctx context.Context, options Options, logPath string) (*Result, error) {
	logger := log.New(io.Discard, "", logFlags)
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		logger.SetOutput(logFile)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	engine, err := NewEngine(screen, options, logger)
	if err != nil {
		return nil, err
	}
	if err := engine.Run(ctx); err != nil {
		return nil, err
	}

	result := engine.Result()
	return &result, nil
}
