// Command inbox prints stored contact messages for the site owner.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DevanshuTiwaskar/portfolio/internal/model"
	"github.com/DevanshuTiwaskar/portfolio/internal/repository"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbURL string

	root := &cobra.Command{
		Use:   "inbox",
		Short: "Read contact form messages",
	}
	root.PersistentFlags().StringVar(&dbURL, "database-url", os.Getenv("DATABASE_URL"), "database connection string")

	var opts model.ContactListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List contact messages, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				return fmt.Errorf("DATABASE_URL not set")
			}
			if opts.Limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", opts.Limit)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, err := repository.Open(ctx, dbURL)
			if err != nil {
				return err
			}
			defer store.Close()

			msgs, err := store.List(ctx, opts)
			if err != nil {
				return err
			}
			return printMessages(cmd.OutOrStdout(), msgs)
		},
	}
	list.Flags().BoolVar(&opts.UnreadOnly, "unread", false, "only show unread messages")
	list.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of messages")
	list.Flags().IntVar(&opts.Offset, "offset", 0, "number of messages to skip")

	root.AddCommand(list)
	return root
}

func printMessages(w io.Writer, msgs []*model.ContactMessage) error {
	if len(msgs) == 0 {
		_, err := fmt.Fprintln(w, "no messages")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tTYPE\tMESSAGE")
	for _, m := range msgs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.Name, m.Email, m.Type, preview(m.Message, 60))
	}
	return tw.Flush()
}

// preview returns the first line of s cut to n runes.
func preview(s string, n int) string {
	s, _, _ = strings.Cut(s, "\n")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
