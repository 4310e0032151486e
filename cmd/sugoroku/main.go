package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/undeconstructed/sugoroku/console"
	"github.com/undeconstructed/sugoroku/export"
	"github.com/undeconstructed/sugoroku/game"
	"github.com/undeconstructed/sugoroku/lang"
)

var (
	flagLang    string
	flagVerbose bool
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:           "sugoroku",
		Short:         "A dice race across a board of hidden surprises",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&flagLang, "lang", "", "display language, like en or ja")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "more logging")
	root.AddCommand(playCommand(), exportCommand())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

// locale picks the display language from --lang, or failing that from
// the LANG environment variable.
func locale() (*lang.Locale, error) {
	bundle, err := lang.Load()
	if err != nil {
		return nil, err
	}

	pref := flagLang
	if pref == "" {
		pref = os.Getenv("LANG")
		if i := strings.IndexByte(pref, '.'); i >= 0 {
			pref = pref[:i]
		}
		pref = strings.ReplaceAll(pref, "_", "-")
	}

	return bundle.Match(pref), nil
}

func playCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play <players file> <world file>",
		Short: "Play a game at the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := locale()
			if err != nil {
				return err
			}

			names, err := game.LoadPlayers(args[0])
			if err != nil {
				return err
			}
			board, err := game.LoadWorld(args[1])
			if err != nil {
				return err
			}

			g, err := game.New(board, names)
			if err != nil {
				return err
			}

			log.Debug().Str("world", board.Title).Int("areas", len(board.Areas)).Int("players", len(names)).Msg("game ready")

			return console.Run(g, loc)
		},
	}
}

func exportCommand() *cobra.Command {
	var flagFormat string
	var flagOutput string

	cmd := &cobra.Command{
		Use:   "export <world file>",
		Short: "Write the whole board out as printable files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := locale()
			if err != nil {
				return err
			}

			board, err := game.LoadWorld(args[0])
			if err != nil {
				return err
			}

			formats, err := export.ParseFormats(flagFormat)
			if err != nil {
				return err
			}

			stem := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			if flagOutput != "" {
				if err := os.MkdirAll(flagOutput, 0755); err != nil {
					return err
				}
				stem = filepath.Join(flagOutput, filepath.Base(stem))
			}

			paths, err := export.All(board, loc, formats, stem)
			if err != nil {
				return err
			}
			for _, p := range paths {
				log.Info().Str("file", p).Msg("wrote")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "tex", "formats to write: tex, pdf, a comma list, or all")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "directory to write into, default beside the world file")

	return cmd
}
