package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort  int
	serveVocab string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes /match, /parse, /extract and /health endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8081, "Port to listen on")
	serveCmd.Flags().StringVar(&serveVocab, "vocab", "", "Path to a vocabulary JSON file (default: built-in vocabulary)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := servePort
	if env := os.Getenv("MATCHER_PORT"); env != "" && !cmd.Flags().Changed("port") {
		parsed, err := strconv.Atoi(env)
		if err != nil {
			return fmt.Errorf("invalid MATCHER_PORT %q: %w", env, err)
		}
		port = parsed
	}

	vocabPath := serveVocab
	if vocabPath == "" {
		vocabPath = os.Getenv("MATCHER_VOCAB")
	}

	srv, err := server.New(server.Config{
		Port:      port,
		VocabPath: vocabPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
