package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Show the resolved admin endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.newClient(cmd)
			if err != nil {
				return err
			}
			d := client.Daemon()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "daemon:\t%s\n", d.ID)
			fmt.Fprintf(out, "endpoint:\t%s\n", client.Endpoint())
			fmt.Fprintf(out, "zone:\t%s (%s)\n", d.Zone, d.Zonegroup)
			fmt.Fprintf(out, "ssl:\t%t\n", client.Listener().SSL)
			return nil
		},
	}
}

func newRealmsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:           "realms",
		Short:         "List realm names known to the gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.newClient(cmd)
			if err != nil {
				return err
			}
			realms, err := client.Realms(cmd.Context())
			if err != nil {
				return err
			}
			for _, realm := range realms {
				fmt.Fprintln(cmd.OutOrStdout(), realm)
			}
			return nil
		},
	}
}

func newPlacementTargetsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:           "placement-targets",
		Short:         "Show the zone's placement targets and their data pools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.newClient(cmd)
			if err != nil {
				return err
			}
			targets, err := client.PlacementTargets(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintf(w, "ZONEGROUP\tNAME\tDATA POOL\n")
			for _, target := range targets.Targets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", targets.Zonegroup, target.Name, target.DataPool)
			}
			return w.Flush()
		},
	}
}

func newBucketsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:           "buckets [bucket]",
		Short:         "List buckets, or show stats for one bucket",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.newClient(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				names, err := client.ListBuckets(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			stats, err := client.GetBucketStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "bucket:\t%s\n", stats.Bucket)
			fmt.Fprintf(out, "owner:\t%s\n", stats.Owner)
			fmt.Fprintf(out, "id:\t%s\n", stats.ID)
			return nil
		},
	}
}

func newBucketLockCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bucket-lock",
		Short:         "Inspect or apply WORM bucket locking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	get := &cobra.Command{
		Use:           "get <bucket>",
		Short:         "Show the object-lock configuration of a bucket",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.newClient(cmd)
			if err != nil {
				return err
			}
			lock, err := client.GetBucketLocking(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "enabled:\t%t\n", lock.Enabled)
			if lock.Mode != "" {
				fmt.Fprintf(out, "mode:\t%s\n", lock.Mode)
				fmt.Fprintf(out, "days:\t%d\n", lock.Days)
				fmt.Fprintf(out, "years:\t%d\n", lock.Years)
			}
			return nil
		},
	}

	var mode, days, years string
	set := &cobra.Command{
		Use:           "set <bucket>",
		Short:         "Apply a default WORM retention to a bucket",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.SetBucketLocking(cmd.Context(), args[0], mode, days, years); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bucket locking applied to %s\n", args[0])
			return nil
		},
	}
	set.Flags().StringVar(&mode, "mode", "", "retention mode (COMPLIANCE or GOVERNANCE)")
	set.Flags().StringVar(&days, "days", "", "retention period in days")
	set.Flags().StringVar(&years, "years", "", "retention period in years")

	cmd.AddCommand(get, set)
	return cmd
}
