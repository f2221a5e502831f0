package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}

	var important bool
	add := &cobra.Command{
		Use:   "add CONTENT",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"content": args[0], "important": important}
			data, err := newClient(apiURL).do(http.MethodPost, "/api/notes", body)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), data)
		},
	}
	add.Flags().BoolVar(&important, "important", false, "mark the note as important")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List notes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := newClient(apiURL).do(http.MethodGet, "/api/notes", nil)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), data)
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show a note",
			Args:  idArg,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := newClient(apiURL).do(http.MethodGet, "/api/notes/"+args[0], nil)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), data)
			},
		},
		add,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a note",
			Args:  idArg,
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := newClient(apiURL).do(http.MethodDelete, "/api/notes/"+args[0], nil); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted note %s\n", args[0])
				return err
			},
		},
	)
	return cmd
}

// idArg requires exactly one integer argument
func idArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}
	return nil
}
