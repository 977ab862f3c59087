// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/latticeworks/wfc/generator"
	"github.com/latticeworks/wfc/internal/stream"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run a generator while broadcasting its event stream over WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd)
		},
	}

	cmd.Flags().String("config", "", "path to a YAML authoring document")
	cmd.Flags().Int64("seed", -1, "PRNG seed; random if unset")
	cmd.Flags().Int("max-retries", 10, "contradiction retry ceiling")
	cmd.Flags().String("addr", ":8080", "address to serve the WebSocket endpoint on")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runWatch(cmd *cobra.Command) error {
	gen, err := buildGenerator(cmd)
	if err != nil {
		return err
	}
	addr, _ := cmd.Flags().GetString("addr")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	hub := stream.NewHub(gen.Subscribe())
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWebsocket)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	for gen.Status() != generator.Done {
		if _, err := gen.Step(); err != nil {
			cancel()
			return err
		}
	}
	cancel()

	if err := <-serverErr; err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
