// Command wiredump prints a decoded instruction listing from a canvaswire
// snapshot file.
//
// Usage:
//
//	wiredump [-stats] snapshot.cwire
//
// Snapshots are produced with wire.NewSnapshot / Snapshot.WriteTo.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/canvaswire/wire"
)

func main() {
	stats := flag.Bool("stats", false, "print op group counts instead of a full listing")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wiredump [-stats] [-v] <snapshot>")
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level(*verbose),
	}))

	if err := run(flag.Arg(0), *stats, log); err != nil {
		log.Error("wiredump failed", "err", err)
		os.Exit(1)
	}
}

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func run(path string, stats bool, log *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snap, err := wire.ReadSnapshot(f)
	if err != nil {
		return err
	}
	log.Debug("snapshot loaded", "context", snap.ContextID, "bytes", len(snap.Stream))

	instrs, err := snap.Instructions()
	if err != nil {
		return err
	}

	fmt.Printf("context %d: %d instructions, %d bytes\n",
		snap.ContextID, len(instrs), len(snap.Stream))

	if stats {
		printStats(instrs)
		return nil
	}
	for i, in := range instrs {
		fmt.Printf("%5d  %s\n", i, in)
	}
	return nil
}

func printStats(instrs []wire.Instr) {
	var state, path, draw, resource, stack int
	for _, in := range instrs {
		switch {
		case in.Op == wire.OpSave || in.Op == wire.OpRestore:
			stack++
		case in.Op.IsStateChange():
			state++
		case in.Op.IsPathOp():
			path++
		case in.Op.IsDrawOp():
			draw++
		case in.Op.IsResourceOp():
			resource++
		}
	}
	fmt.Printf("  stack:    %d\n", stack)
	fmt.Printf("  state:    %d\n", state)
	fmt.Printf("  path:     %d\n", path)
	fmt.Printf("  draw:     %d\n", draw)
	fmt.Printf("  resource: %d\n", resource)
}
