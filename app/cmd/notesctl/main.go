package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var apiURL string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	def := os.Getenv("API_URL")
	if def == "" {
		def = "http://localhost:3001"
	}

	root := &cobra.Command{
		Use:          "notesctl",
		Short:        "Client for the notes and phonebook api",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "url", def, "api base url")

	root.AddCommand(newNotesCmd(), newPersonsCmd(), newInfoCmd())
	return root
}

// printJSON indents data to out
func printJSON(out io.Writer, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	_, err := fmt.Fprintln(out, buf.String())
	return err
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the phonebook summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := newClient(apiURL).do(http.MethodGet, "/api/info", nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
