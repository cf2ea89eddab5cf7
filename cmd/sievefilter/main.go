// Command sievefilter converts a tokenized Sieve script tree to the
// simplified filter model and prints it as JSON.
//
// The tree is read as JSON from a file or stdin. With -verify the raw
// script is additionally parsed through go-sieve first, so a tree that
// was tokenized from an invalid script is rejected before conversion.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/foxcpp/go-sieve"

	"github.com/sievetools/simplefilter/ast"
	"github.com/sievetools/simplefilter/simple"
)

func main() {
	var (
		treePath   = flag.String("tree", "-", "tokenized script tree as JSON (\"-\" for stdin)")
		scriptPath = flag.String("verify", "", "raw Sieve script to syntax-check before converting")
		logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	if *scriptPath != "" {
		if err := verifyScript(*scriptPath); err != nil {
			log.Error("script failed Sieve validation", "path", *scriptPath, "error", err)
			os.Exit(1)
		}
		log.Debug("script is valid Sieve", "path", *scriptPath)
	}

	nodes, err := readTree(*treePath)
	if err != nil {
		log.Error("failed to read tree", "path", *treePath, "error", err)
		os.Exit(1)
	}

	filter, err := simple.FromTree(nodes)
	if err != nil {
		var unsupported *simple.UnsupportedRepresentationError
		if errors.As(err, &unsupported) {
			log.Error("script is outside the supported subset", "error", err)
		} else {
			log.Error("tree is not a valid filter", "error", err)
		}
		os.Exit(1)
	}

	out, err := json.MarshalIndent(filter, "", "  ")
	if err != nil {
		log.Error("failed to encode model", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// verifyScript parses the raw script through go-sieve, the same check the
// ManageSieve PUTSCRIPT path performs before accepting a script.
func verifyScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = sieve.Load(f, sieve.DefaultOptions())
	return err
}

func readTree(path string) ([]*ast.Node, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var nodes []*ast.Node
	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	return nodes, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
