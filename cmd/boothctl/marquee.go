package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phambaophuc/ai-photobooth/internal/services/marquee"
)

// marqueeCmd prints gallery strips for a list of image references
var marqueeCmd = &cobra.Command{
	Use:   "marquee <refs-file|->",
	Short: "Print marquee windows for a list of image references",
	Long: strings.TrimSpace(`
Reads one image reference per line and prints the wraparound window starting at
--start. With --layout it prints the full gallery wall instead: the newest
--latest references first, the rest shuffled, repeated to fill every strip.

Example: boothctl marquee refs.txt --start 4 --size 6`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refs, err := readRefs(cmd, args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		out := cmd.OutOrStdout()

		if layout, _ := flags.GetBool("layout"); layout {
			perWindow, _ := flags.GetInt("size")
			windows, _ := flags.GetInt("windows")
			latest, _ := flags.GetInt("latest")
			seed, _ := flags.GetInt64("seed")
			if !flags.Changed("seed") {
				seed = time.Now().UnixNano()
			}

			m, err := marquee.Layout(refs, marquee.Options{
				PerWindow: perWindow,
				Windows:   windows,
				Latest:    latest,
			}, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			for i, w := range m.Windows {
				fmt.Fprintf(out, "strip %d: %s\n", i+1, strings.Join(w, " "))
			}
			return nil
		}

		start, _ := flags.GetInt("start")
		size, _ := flags.GetInt("size")
		w, err := marquee.Window(refs, start, size)
		if err != nil {
			return err
		}
		for _, ref := range w {
			fmt.Fprintln(out, ref)
		}
		return nil
	},
}

func readRefs(cmd *cobra.Command, src string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", src, err)
		}
		defer f.Close()
		r = f
	}

	var refs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			refs = append(refs, line)
		}
	}
	return refs, scanner.Err()
}

func init() {
	flags := marqueeCmd.Flags()
	flags.Int("start", 0, "window start index, may be negative or past the end")
	flags.Int("size", marquee.DefaultWindowSize, "images per window")
	flags.Bool("layout", false, "print the whole gallery wall")
	flags.Int("windows", 3, "strips in the wall (with --layout)")
	flags.Int("latest", 6, "newest references kept in order (with --layout)")
	flags.Int64("seed", 0, "shuffle seed (with --layout)")

	rootCmd.AddCommand(marqueeCmd)
}
