package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/calbisu/menumind/internal/casebase"
	"github.com/calbisu/menumind/internal/cbr"
	"github.com/calbisu/menumind/internal/factories"
	"github.com/calbisu/menumind/internal/models"
	"github.com/calbisu/menumind/internal/storage"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	requestFile string
	log         = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "menumind",
	Short: "Case-based reasoning engine for catering menu proposals",
	Long: `menumind proposes multi-course catering menus by retrieving, adapting and
validating prior successful menu/event pairings, and learns from client
feedback to improve future proposals.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		configureLogging(cfg)

		engine, cb := buildEngine(cfg)

		req, err := readRequest(requestFile)
		if err != nil {
			log.WithError(err).Fatal("failed to read request")
		}

		proposals := engine.Propose(req)
		out, err := json.MarshalIndent(proposals, "", "  ")
		if err != nil {
			log.WithError(err).Fatal("failed to serialize proposals")
		}
		fmt.Println(string(out))

		persistCaseBase(cfg, cb)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")
	rootCmd.Flags().StringVar(&requestFile, "request", "", "path to a JSON request file")

	rootCmd.Flags().Int("retrieval-k", 5, "Number of cases to retrieve")
	rootCmd.Flags().Int("max-proposals", 3, "Maximum menus returned per request")
	rootCmd.Flags().Float64("min-diversity-distance", 0.3, "Minimum pairwise distance between proposals")
	rootCmd.Flags().String("case-base-path", "", "Path for loading and saving the case base snapshot")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

// buildEngine seeds the case base, restores persisted cases when
// configured and wires the cycle. Postgres takes precedence over the
// JSON snapshot.
func buildEngine(cfg *models.Config) (*cbr.Engine, *casebase.CaseBase) {
	cb := casebase.New(log)
	factories.SeedCaseBase(cb)

	switch {
	case cfg.PostgresEnabled:
		ctx := context.Background()
		store, err := storage.NewCaseStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to postgres")
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("failed to prepare postgres schema")
		}
		cases, err := store.LoadCases(ctx)
		if err != nil {
			log.WithError(err).Fatal("failed to load cases from postgres")
		}
		if len(cases) > 0 {
			cb.ReplaceCases(cases)
		}
	case cfg.CaseBasePath != "":
		if _, err := os.Stat(cfg.CaseBasePath); err == nil {
			if err := cb.Load(cfg.CaseBasePath); err != nil {
				log.WithError(err).Fatal("failed to load case base")
			}
		}
	}
	return cbr.NewEngine(cfg, cb, log), cb
}

// persistCaseBase writes the case list back to whichever store is
// configured.
func persistCaseBase(cfg *models.Config, cb *casebase.CaseBase) {
	if cfg.PostgresEnabled {
		ctx := context.Background()
		store, err := storage.NewCaseStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Error("failed to connect to postgres")
			return
		}
		defer store.Close()
		if err := store.SaveCases(ctx, cb.Cases()); err != nil {
			log.WithError(err).Error("failed to save cases to postgres")
		}
		return
	}
	if cfg.CaseBasePath != "" {
		if err := cb.Save(cfg.CaseBasePath); err != nil {
			log.WithError(err).Error("failed to save case base")
		}
	}
}

func configureLogging(cfg *models.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func readRequest(path string) (models.Request, error) {
	var req models.Request
	if path == "" {
		return req, fmt.Errorf("no request file given, use --request")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("error reading request file: %w", err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("error parsing request file: %w", err)
	}
	if req.NumGuests < 1 {
		return req, fmt.Errorf("num_guests must be at least 1")
	}
	if req.PriceMin > req.PriceMax {
		return req, fmt.Errorf("price_min %.2f exceeds price_max %.2f", req.PriceMin, req.PriceMax)
	}
	return req, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
