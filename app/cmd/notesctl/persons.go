package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func newPersonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "persons",
		Aliases: []string{"phonebook"},
		Short:   "Manage phonebook entries",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List persons",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := newClient(apiURL).do(http.MethodGet, "/api/persons", nil)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), data)
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show a person",
			Args:  idArg,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := newClient(apiURL).do(http.MethodGet, "/api/persons/"+args[0], nil)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), data)
			},
		},
		&cobra.Command{
			Use:   "add NAME NUMBER",
			Short: "Create a person",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				body := map[string]string{"name": args[0], "number": args[1]}
				data, err := newClient(apiURL).do(http.MethodPost, "/api/persons", body)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), data)
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a person",
			Args:  idArg,
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := newClient(apiURL).do(http.MethodDelete, "/api/persons/"+args[0], nil); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted person %s\n", args[0])
				return err
			},
		},
	)
	return cmd
}
