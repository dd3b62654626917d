package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	authProcessor "loyalty-server/internal/auth/processor"
	"loyalty-server/internal/bootstrap"
	campaignProcessor "loyalty-server/internal/campaign/processor"
	"loyalty-server/internal/config"
	"loyalty-server/internal/notifications"
	"loyalty-server/internal/observability"

	"github.com/spf13/cobra"
)

// withDeps loads config and dependencies for one command run
func withDeps(cmd *cobra.Command, fn func(ctx context.Context, deps *bootstrap.Dependencies) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := observability.NewLogger()
	defer logger.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Cleanup()

	return fn(ctx, deps)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func promoteCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Activate scheduled campaigns whose start date has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(ctx context.Context, deps *bootstrap.Dependencies) error {
				result, err := deps.Campaigns.PromoteDueCampaigns(ctx, time.Now(), limit)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", campaignProcessor.DefaultPromotionBatch, "Maximum campaigns to promote")
	return cmd
}

func scansCmd() *cobra.Command {
	var businessID string
	cmd := &cobra.Command{
		Use:   "scans [token-id]",
		Short: "Show scan counts for a reward or campaign token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(ctx context.Context, deps *bootstrap.Dependencies) error {
				stats, err := deps.Analytics.GetTokenScanStats(ctx, businessID, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			})
		},
	}
	cmd.Flags().StringVarP(&businessID, "business", "b", "", "Business id")
	_ = cmd.MarkFlagRequired("business")
	return cmd
}

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inspect the outbound notification queue",
	}

	var max int
	drain := &cobra.Command{
		Use:   "drain",
		Short: "Pop queued notification messages and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(ctx context.Context, deps *bootstrap.Dependencies) error {
				msgs, err := notifications.Drain(ctx, deps.Queue, max)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), msgs)
			})
		},
	}
	drain.Flags().IntVarP(&max, "max", "n", 100, "Maximum messages to pop, 0 for all")

	cmd.AddCommand(drain)
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		subject    string
		businessID string
		role       string
		ttl        time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			auth := authProcessor.New(cfg.Auth.JWTSecret, observability.NewLogger())
			token, err := auth.IssueToken(cmd.Context(), subject, businessID, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "loyaltyctl", "Token subject")
	cmd.Flags().StringVarP(&businessID, "business", "b", "", "Business id for business tokens")
	cmd.Flags().StringVar(&role, "role", authProcessor.RoleBusiness, "business or operator")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}
