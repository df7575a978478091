// Package main is a small command line client for the QAI platform API.
// It loads credentials and endpoint settings from a config file (or QAI_*
// environment variables) and prints raw JSON responses.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shaoqingyang/qingcloud-sdk-go/config"
	"github.com/shaoqingyang/qingcloud-sdk-go/qai"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version":
		fmt.Printf("QAI CLI\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)

	case "user", "resource-groups", "trains", "train-metrics":
		runAPICommand(command, os.Args[2:])

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runAPICommand builds a client from configuration and dispatches one call.
func runAPICommand(command string, args []string) {
	cfg, err := config.Load(os.Getenv("QAI_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err == nil {
		zerolog.SetGlobalLevel(level)
	}

	client := qai.NewClient(qai.ClientConfig{
		Credentials: cfg.Credentials.Credentials(),
		Zone:        cfg.Credentials.Zone,
		Host:        cfg.Endpoint.Host,
		Port:        cfg.Endpoint.Port,
		Protocol:    cfg.Endpoint.Protocol,
		Timeout:     cfg.Endpoint.Timeout,
		Logger:      log.Logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var resp string
	switch command {
	case "user":
		resp, err = client.GetUserInfo(ctx)

	case "resource-groups":
		resp, err = client.GetResourceGroups(ctx, qai.GetResourceGroupsInput{})

	case "trains":
		input := qai.GetTrainsInput{}
		if len(args) > 0 {
			input.Namespace = args[0]
		}
		resp, err = client.GetTrains(ctx, input)

	case "train-metrics":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "usage: qai-cli train-metrics <resource-id>[,<resource-id>...]")
			os.Exit(2)
		}
		resp, err = client.TrainsMetrics(ctx, qai.NamespaceAll, strings.Split(args[0], ","))
	}

	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("request failed")
		os.Exit(1)
	}

	fmt.Println(resp)
}

func printUsage() {
	fmt.Println(`QAI CLI

Usage:
  qai-cli <command> [arguments]

Commands:
  user             Show account and work group information
  resource-groups  List resource groups
  trains [ns]      List training jobs (namespace defaults to ALL)
  train-metrics    Show metrics for training jobs (comma-separated ids)
  version          Print version information
  help             Show this help message

Configuration is read from ./config.yaml, ~/.qai/config.yaml, or the file
named by QAI_CONFIG; QAI_* environment variables override file values.

Example config:
  credentials:
    access_key_id: QYACCESSKEYIDEXAMPLE
    secret_key: SECRETACCESSKEYEXAMPLE
    zone: pek3a`)
}
