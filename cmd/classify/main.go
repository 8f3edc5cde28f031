// Command classify labels a single viewer comment with one of six viewer
// archetypes. It asks a hosted language model first and falls back to local
// keyword rules when the model is unreachable or unconfigured.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/streamlens/content-analysis/internal/commentclass"
	"github.com/streamlens/content-analysis/internal/inference"
)

const requestTimeout = 30 * time.Second

var (
	promptPath string
	model      string

	rootCmd = &cobra.Command{
		Use:   "classify \"<comment>\"",
		Short: "Classify a viewer comment into a viewer archetype",
		Long: `Classify a single viewer comment as one of: ` +
			strings.Join(commentclass.Labels, ", ") + `.

Uses a hosted inference model when a token is set in HUGGINGFACE_TOKEN or
HF_TOKEN, and deterministic keyword rules otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0])
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&promptPath, "prompt", commentclass.DefaultPromptPath,
		"path to the prompt template")
	rootCmd.Flags().StringVar(&model, "model", inference.DefaultModel,
		"inference model identifier")
}

func run(ctx context.Context, comment string) error {
	label, err := classifyRemote(ctx, comment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: model classification unavailable (%v), using keyword rules\n", err)
		label = commentclass.NewFallbackClassifier().Classify(comment)
	}
	fmt.Println(label)
	return nil
}

// classifyRemote runs the comment through the hosted model. Any failure,
// including a missing token or prompt file, hands control to the fallback.
func classifyRemote(ctx context.Context, comment string) (string, error) {
	token := os.Getenv("HUGGINGFACE_TOKEN")
	if token == "" {
		token = os.Getenv("HF_TOKEN")
	}
	if token == "" {
		return "", fmt.Errorf("no inference token set")
	}

	template, err := commentclass.LoadPrompt(promptPath)
	if err != nil {
		return "", fmt.Errorf("load prompt: %w", err)
	}

	client := inference.NewClient(model, token, inference.WithTimeout(requestTimeout))
	raw, err := client.Generate(ctx, commentclass.BuildPrompt(template, comment))
	if err != nil {
		return "", err
	}
	return commentclass.SanitizeModelOutput(raw), nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		os.Exit(1)
	}
}
