package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

var (
	serverURL  = flag.String("server", "ws://localhost:8000/ws/dictation", "Dictation WebSocket URL")
	staffID    = flag.String("staff", "staff-1", "Staff ID to attribute the dictation to")
	transcript = flag.String("text", "", "Transcript to send in one shot (non-interactive)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := NewClient(&ClientConfig{
		ServerURL: *serverURL,
		StaffID:   *staffID,
	}, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nClosing dictation session...")
		client.Stop()
		os.Exit(0)
	}()

	if err := client.Connect(); err != nil {
		logger.Fatal("Failed to connect to server", zap.Error(err))
	}

	if *transcript != "" {
		// One-shot mode: send the transcript, print the extraction result.
		if err := client.SendChunk(*transcript); err != nil {
			logger.Fatal("Failed to send transcript", zap.Error(err))
		}
		if err := client.Finalize(); err != nil {
			logger.Fatal("Failed to finalize dictation", zap.Error(err))
		}
		client.WaitForResult()
		client.Stop()
		return
	}

	runInteractiveMode(client)
}

func runInteractiveMode(client *Client) {
	fmt.Println("\nStaffHub Dictation Client - Interactive Mode")
	fmt.Println("============================================")
	fmt.Println("Commands:")
	fmt.Println("  say <text>   - Append a transcript chunk")
	fmt.Println("  done         - Finalize and run template extraction")
	fmt.Println("  reset        - Discard the current transcript")
	fmt.Println("  quit         - Exit")
	fmt.Println("")

	client.RunInteractive()
}
