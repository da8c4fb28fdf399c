package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/clipboard"
	"github.com/zhubert/gigglegen/internal/config"
	"github.com/zhubert/gigglegen/internal/logger"
	"github.com/zhubert/gigglegen/internal/selector"
	"github.com/zhubert/gigglegen/internal/share"
)

var (
	jokeCount int
	jokeCopy  bool
	jokeShare bool
)

var jokeCmd = &cobra.Command{
	Use:   "joke",
	Short: "Print random jokes without starting the TUI",
	Long: `Prints one or more random jokes from a category.

With --copy the last joke is copied to the clipboard. With --share it is
handed to the share sheet, or a WhatsApp link is opened and printed.`,
	Args: cobra.NoArgs,
	RunE: runJoke,
}

func init() {
	jokeCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category to draw from")
	jokeCmd.Flags().IntVarP(&jokeCount, "count", "n", 1, "Number of jokes to print")
	jokeCmd.Flags().BoolVar(&jokeCopy, "copy", false, "Copy the last joke to the clipboard")
	jokeCmd.Flags().BoolVar(&jokeShare, "share", false, "Share the last joke")
	rootCmd.AddCommand(jokeCmd)
}

// jokeSharer is the part of share.Service the joke command needs
type jokeSharer interface {
	Share(ctx context.Context, joke string) share.Result
}

// jokeRun holds everything one joke invocation touches, so tests can swap
// the collaborators.
type jokeRun struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	picker   *selector.Selector
	out      io.Writer
	errOut   io.Writer
	copyText func(string) error
	sharer   jokeSharer
}

func runJoke(cmd *cobra.Command, args []string) error {
	defer logger.Close()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	var picker *selector.Selector
	if cfg.Seed != nil {
		picker = selector.NewSeeded(cat, *cfg.Seed)
	} else {
		picker = selector.NewRandom(cat)
	}

	r := &jokeRun{
		cfg:      cfg,
		catalog:  cat,
		picker:   picker,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		copyText: clipboard.WriteText,
		sharer:   share.NewService(share.WithLink(cfg.ShareURL)),
	}
	return r.run(jokeCount, jokeCopy, jokeShare)
}

func (r *jokeRun) run(count int, copyLast, shareLast bool) error {
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	id := r.cfg.Category()
	var last string
	for i := 0; i < count; i++ {
		joke, err := r.picker.Select(id)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, joke)
		last = joke
	}

	if copyLast {
		if err := r.copyText(last); err != nil {
			logger.Warn("native clipboard write failed, using OSC52: %v", err)
			fmt.Fprint(r.errOut, ansi.SetSystemClipboard(last))
		}
		fmt.Fprintln(r.errOut, "Joke copied to clipboard!")
	}

	if shareLast {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		res := r.sharer.Share(ctx, last)
		switch res.Method {
		case share.MethodNative:
			fmt.Fprintln(r.errOut, "Joke shared!")
		case share.MethodFallback:
			fmt.Fprintf(r.errOut, "Share link: %s\n", res.URL)
		default:
			if res.URL != "" {
				fmt.Fprintf(r.errOut, "Share link: %s\n", res.URL)
			}
			if res.Err != nil {
				return res.Err
			}
		}
	}
	return nil
}

