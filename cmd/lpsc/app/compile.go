package app

import (
	"fmt"
	"os"

	"github.com/phillarmonic/lpsc/internal/cache"
	"github.com/phillarmonic/lpsc/internal/compiler"
	"github.com/phillarmonic/lpsc/internal/errors"
)

// Domain: Compilation
// This file contains the compile driver: read source, compile, write output

// RunCompile compiles args[0] into args[1]. Grammar errors are rendered
// with their source position and terminate the process; nothing is
// written on failure.
func RunCompile(args []string, verbose bool, noCache bool) error {
	if len(args) != 2 {
		fmt.Println("Usage: lpsc <input.lps1> <output.c>")
		return nil
	}

	inputPath := args[0]
	outputPath := args[1]

	cfg, err := readWorkspace()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read input file '%s': %w", inputPath, err)
	}
	source := string(data)

	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "📂 Loading: %s\n", inputPath)
	}

	cacheOff := noCache || cfg.DisableCache
	store, err := cache.Open(cfg.cacheExpiration(), cacheOff)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to open compile cache: %v\n", err)
		store, _ = cache.Open(cfg.cacheExpiration(), true)
	}
	defer func() { _ = store.Close() }()

	if verbose {
		if cacheOff {
			_, _ = fmt.Fprintf(os.Stdout, "💾 Compile caching: disabled\n")
		} else {
			_, _ = fmt.Fprintf(os.Stdout, "💾 Compile caching: enabled (%s expiration)\n", cfg.cacheExpiration())
		}
	}

	if cached, hit := store.Lookup(source); hit {
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "💾 Cache hit, reusing compiled output\n")
		}
		return writeOutput(outputPath, cached, verbose)
	}

	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "🔍 Compiling %s...\n", inputPath)
	}

	code, err := compiler.Compile(source)
	if err != nil {
		fmt.Fprint(os.Stderr, errors.Format(err, inputPath, source))
		os.Exit(1)
	}

	if err := store.Save(source, code); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to store compile cache entry: %v\n", err)
	}

	return writeOutput(outputPath, code, verbose)
}

// writeOutput writes the generated C program to outputPath
func writeOutput(outputPath string, code string, verbose bool) error {
	if err := os.WriteFile(outputPath, []byte(code), 0644); err != nil {
		return fmt.Errorf("cannot write output file '%s': %w", outputPath, err)
	}
	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "✅ Wrote %s\n", outputPath)
	}
	return nil
}
