package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Setup logger
	log.SetOutput(os.Stderr)
	log.SetPrefix("gourmet ")
	log.SetFlags(log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ExecuteContext(ctx)
}
