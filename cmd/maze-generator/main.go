package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/game"
	"github.com/lixenwraith/blind-maze/maze"
)

var (
	sizeFlag  = flag.Float64("size", 0, "maze side length in world units (0 prompts)")
	cellFlag  = flag.Float64("cell", 0, "cell side length in world units (0 prompts)")
	seedFlag  = flag.Int64("seed", 0, "maze seed (0 prompts, random on empty answer)")
	solveFlag = flag.Bool("solve", true, "overlay the entrance-to-exit path")
)

func main() {
	flag.Parse()

	// Fully specified on the command line: one maze, no prompts
	if *sizeFlag > 0 && *cellFlag > 0 && *seedFlag != 0 {
		if err := generate(os.Stdout, *sizeFlag, *cellFlag, *seedFlag, *solveFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== BLIND MAZE GENERATOR ===")

		size := getFloat(reader, fmt.Sprintf("Size (default %g): ", config.DefaultSize), config.DefaultSize)
		cell := getFloat(reader, fmt.Sprintf("Cell size (default %g): ", config.DefaultCellSize), config.DefaultCellSize)
		seed := int64(getInt(reader, "Seed (default random): ", 0))
		if seed == 0 {
			seed = game.RandomSeed()
		}

		if err := generate(os.Stdout, size, cell, seed, *solveFlag); err != nil {
			fmt.Println("Error:", err)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func generate(w io.Writer, size, cell float64, seed int64, solve bool) error {
	startT := time.Now()
	m, err := maze.Generate(maze.Params{Size: size, CellSize: cell, Seed: seed})
	if err != nil {
		return err
	}
	dur := time.Since(startT)

	fmt.Fprintf(w, "Done in %v\n", dur)
	fmt.Fprintf(w, "Seed %d, grid %dx%d, entrance col %d, exit col %d\n",
		seed, m.GridSize, m.GridSize, m.EntranceCol, m.ExitCol)

	var path []maze.Point
	if solve {
		path = m.Solve()
		fmt.Fprintf(w, "Solution Path Length: %d cells\n", len(path))
	}

	return m.Draw(w, path)
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
