package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/viranchils96/slovak-flashcards/config"
	"github.com/viranchils96/slovak-flashcards/stemmer"
	utils "github.com/viranchils96/slovak-flashcards/utils"
)

const usage = `Usage: flashcards [options...] flashcards-file.csv

The flashcards file is read (it may be missing when -import is set), words of
the -import text are appended as new cards unless already known, trivial
cards are dropped and the deck is shuffled. The result is written next to the
input as <name>-new.csv.

Options:
`

type dedupFlag []string

func (d *dedupFlag) String() string { return strings.Join(*d, ",") }

func (d *dedupFlag) Set(v string) error {
	*d = append(*d, v)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (config.Config, string, error) {
	fs := flag.NewFlagSet("flashcards", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	def := config.Default()
	var (
		configPath string
		flagCfg    config.Config
		dedup      dedupFlag
	)
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&flagCfg.Language, "language", def.Language, "card language: "+strings.Join(stemmer.Languages(), ", "))
	fs.BoolVar(&flagCfg.Stem, "stem", def.Stem, "deduplicate by stem")
	fs.BoolVar(&flagCfg.Shuffle, "shuffle", def.Shuffle, "reorder cards by note priority")
	fs.BoolVar(&flagCfg.Trivials, "trivials", def.Trivials, "drop cards whose key equals the translation")
	fs.StringVar(&flagCfg.Import, "import", "", "text file whose words become new cards")
	fs.Var(&dedup, "dedup", "card file or directory of card files to deduplicate against (repeatable)")
	fs.StringVar(&flagCfg.Search, "search", "", "print cards related to this query")
	fs.IntVar(&flagCfg.MaxResults, "max", def.MaxResults, "maximum search results")
	fs.IntVar(&flagCfg.Shards, "shards", def.Shards, "search index shards")
	fs.Uint64Var(&flagCfg.Seed, "seed", 0, "shuffle seed, 0 for random")
	fs.BoolVar(&flagCfg.Verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, "", err
	}
	if fs.NArg() != 1 || !strings.HasSuffix(fs.Arg(0), ".csv") {
		fs.Usage()
		return config.Config{}, "", errors.New("exactly one .csv flashcards file is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, "", err
	}
	// explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "language":
			cfg.Language = flagCfg.Language
		case "stem":
			cfg.Stem = flagCfg.Stem
		case "shuffle":
			cfg.Shuffle = flagCfg.Shuffle
		case "trivials":
			cfg.Trivials = flagCfg.Trivials
		case "import":
			cfg.Import = flagCfg.Import
		case "dedup":
			cfg.Dedup = dedup
		case "search":
			cfg.Search = flagCfg.Search
		case "max":
			cfg.MaxResults = flagCfg.MaxResults
		case "shards":
			cfg.Shards = flagCfg.Shards
		case "seed":
			cfg.Seed = flagCfg.Seed
		case "v":
			cfg.Verbose = flagCfg.Verbose
		}
	})
	return cfg, fs.Arg(0), cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(args []string) error {
	cfg, deckFile, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outFile := utils.OutputFileName(deckFile, "-new.csv")
	log.Info("flashcards", zap.String("deck", deckFile), zap.String("output", outFile),
		zap.String("language", cfg.Language), zap.Bool("stem", cfg.Stem))

	analyzer, err := utils.NewAnalyzer(cfg.Language, cfg.Stem)
	if err != nil {
		return err
	}

	start := time.Now()
	cards, err := utils.ReadCardsFile(ctx, deckFile, log)
	if err != nil {
		return err
	}
	log.Debug("loaded deck", zap.Int("cards", len(cards)), zap.Duration("took", time.Since(start)))

	dedup := utils.NewDeduper(analyzer)
	dedup.AddCards(cards)
	if err := utils.LoadDedupSources(ctx, cfg.Dedup, dedup, log); err != nil {
		return err
	}

	if cfg.Import != "" {
		var added int
		cards, added, err = utils.ImportFile(ctx, cards, cfg.Import, dedup, log)
		if err != nil {
			return err
		}
		log.Info("import done", zap.Int("new_cards", added), zap.Int("known_terms", dedup.Len()))
	}

	if cfg.Trivials {
		before := len(cards)
		cards = utils.FilterTrivials(cards, analyzer, log)
		log.Info("filtered trivial cards", zap.Int("removed", before-len(cards)))
	}

	if cfg.Shuffle {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		cards = utils.ShuffleCards(cards, rand.New(rand.NewPCG(seed, seed)))
		log.Debug("shuffled deck", zap.Uint64("seed", seed))
	}

	if err := utils.WriteCardsFile(outFile, cards); err != nil {
		return err
	}
	log.Info("deck saved", zap.String("file", outFile), zap.Int("cards", len(cards)))

	if cfg.Search != "" {
		start = time.Now()
		idx := utils.NewIndex(cfg.Shards, analyzer)
		idx.Add(cards)
		results := idx.Search(cfg.Search, cfg.MaxResults)
		log.Info("search", zap.String("query", cfg.Search), zap.Int("results", len(results)),
			zap.Duration("took", time.Since(start)))
		for _, r := range results {
			fmt.Printf("%.4f\t%s\t%s\t%s\n", r.Score, r.Card.Key, r.Card.Value, r.Card.Comment)
		}
	}
	return nil
}
