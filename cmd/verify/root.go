package main

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ressKim-io/sentiment-api/internal/adapter/model"
	"github.com/ressKim-io/sentiment-api/internal/domain/entity"
	"github.com/ressKim-io/sentiment-api/internal/infrastructure/config"
)

// defaultText is the sentence the artifacts are expected to call positive
const defaultText = "I loved that movie"

// Prediction is one line of verify output
type Prediction struct {
	Text      string           `json:"text"`
	Class     int              `json:"class"`
	Sentiment entity.Sentiment `json:"sentiment"`
}

func newRootCmd() *cobra.Command {
	var (
		configPath     string
		vectorizerPath string
		classifierPath string
		jsonOutput     bool
		expect         string
	)

	cmd := &cobra.Command{
		Use:   "verify [text...]",
		Short: "Run the model artifacts against sample texts",
		Long: `Load the vectorizer and classifier artifacts the API serves and print
the predicted class and sentiment for each text.

Artifact paths come from the service configuration unless overridden.
With no arguments the text "` + defaultText + `" is used.

Examples:
  verify                                  # predict the default sentence
  verify "terrible, I hated it" --json    # machine-readable output
  verify --expect positive                # fail unless every text is positive`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expect != "" && !entity.Sentiment(expect).IsValid() {
				return fmt.Errorf("--expect must be %q or %q", entity.SentimentPositive, entity.SentimentNegative)
			}

			cfg, err := config.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			if vectorizerPath == "" {
				vectorizerPath = cfg.Model.VectorizerPath
			}
			if classifierPath == "" {
				classifierPath = cfg.Model.ClassifierPath
			}

			arts, err := model.Load(vectorizerPath, classifierPath)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{defaultText}
			}
			results := predictAll(arts, args)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return fmt.Errorf("failed to encode results: %w", err)
				}
			} else {
				printTable(results)
			}

			return checkExpected(results, entity.Sentiment(expect))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml if present)")
	cmd.Flags().StringVar(&vectorizerPath, "vectorizer", "", "vectorizer artifact path (overrides config)")
	cmd.Flags().StringVar(&classifierPath, "classifier", "", "classifier artifact path (overrides config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "output results as JSON")
	cmd.Flags().StringVar(&expect, "expect", "", "exit non-zero unless every text has this sentiment")

	return cmd
}

func predictAll(arts *model.Artifacts, texts []string) []Prediction {
	results := make([]Prediction, 0, len(texts))
	for _, text := range texts {
		class := arts.Classifier.Predict(arts.Vectorizer.Transform(text))
		results = append(results, Prediction{
			Text:      text,
			Class:     class,
			Sentiment: entity.SentimentFromClass(class),
		})
	}
	return results
}

func printTable(results []Prediction) {
	data := pterm.TableData{{"Text", "Class", "Sentiment"}}
	for _, r := range results {
		data = append(data, []string{r.Text, fmt.Sprint(r.Class), r.Sentiment.String()})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func checkExpected(results []Prediction, want entity.Sentiment) error {
	if want == "" {
		return nil
	}
	for _, r := range results {
		if r.Sentiment != want {
			return fmt.Errorf("%q predicted %s, expected %s", r.Text, r.Sentiment, want)
		}
	}
	return nil
}
