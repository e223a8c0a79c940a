package cmd

import (
	"fmt"
	"os"

	"github.com/calbisu/menumind/internal/factories"
	"github.com/calbisu/menumind/internal/models"
	"github.com/goccy/go-json"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var simulateCount int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run synthetic requests through the full cycle",
	Long: `simulate generates random catering requests, proposes menus for each,
fabricates client feedback and feeds it back into retention and weight
learning. Useful for exercising the case base and watching the weights
drift.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		configureLogging(cfg)

		engine, cb := buildEngine(cfg)
		factory := factories.NewRequestFactory(int64(cfg.Seed))

		bar := progressbar.NewOptions(simulateCount,
			progressbar.OptionSetDescription("Simulating requests"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)

		var proposed, retained int
		for i := 0; i < simulateCount; i++ {
			req := factory.CreateRequest()
			set := engine.Propose(req)
			if len(set.Proposals) == 0 {
				bar.Add(1)
				continue
			}
			proposed++

			best := set.Proposals[0]
			feedback := factory.CreateFeedback(best.Menu.ID)
			stored, _ := engine.AcceptFeedback(feedback, req, best.Menu, best.AdaptationNotes)
			if stored {
				retained++
			}
			bar.Add(1)
		}
		fmt.Fprintln(os.Stderr)

		summary := engine.Retainer().LearnerSummary()
		out, err := json.MarshalIndent(map[string]interface{}{
			"requests":       simulateCount,
			"served":         proposed,
			"retained":       retained,
			"case_base_size": cb.Len(),
			"learning":       summary,
		}, "", "  ")
		if err != nil {
			log.WithError(err).Fatal("failed to serialize simulation summary")
		}
		fmt.Println(string(out))

		persistCaseBase(cfg, cb)
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simulateCount, "count", 100, "Number of synthetic requests to run")
	rootCmd.AddCommand(simulateCmd)
}
