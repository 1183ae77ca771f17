package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"yaedit"
	"yaedit/internal/config"
)

var errEmptyInput = errors.New("input is empty")

// mergeConfig layers explicitly-set flags over the file/default config.
func mergeConfig(cfg *config.Config, flags *cliFlags) *config.Config {
	merged := *cfg
	if flags.action != "" {
		merged.Action = flags.action
	}
	if flags.maxRetries > 0 {
		merged.MaxRetries = flags.maxRetries
	}
	if flags.chunkLength > 0 {
		merged.ChunkLength = flags.chunkLength
	}
	return &merged
}

func run(ctx context.Context, flags *cliFlags, logger *slog.Logger) error {
	cfg := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg = mergeConfig(cfg, flags)

	action := yaedit.Action(cfg.Action)
	if err := action.Validate(); err != nil {
		return err
	}

	text, err := readInput(flags.input)
	if err != nil {
		return err
	}

	svc := yaedit.New(
		yaedit.WithMaxRetries(cfg.MaxRetries),
		yaedit.WithChunkLength(cfg.ChunkLength),
		yaedit.WithLogger(logger),
	)
	defer svc.Close()

	logger.Debug("processing input",
		"action", action,
		"chars", len([]rune(text)),
		"max_retries", cfg.MaxRetries,
		"chunk_length", cfg.ChunkLength)

	var result string
	if action == yaedit.ActionTranslate {
		// Translation goes through the dedicated translator endpoint; every
		// other action is an editor transform.
		result, err = svc.Translate(ctx, text)
	} else {
		result, err = svc.Transform(ctx, text, action)
	}
	if err != nil {
		return err
	}

	return writeOutput(flags.output, result)
}

func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if len(data) == 0 {
		return "", errEmptyInput
	}
	return string(data), nil
}

func writeOutput(path, result string) error {
	if path == "" {
		_, err := fmt.Println(result)
		return err
	}
	if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
