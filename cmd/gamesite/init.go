package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/gamesite/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Create a starter site",
	Long: `Init writes gamesite.yaml, config/ structure files and sample content
into dir. Existing files are never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		out := cmd.OutOrStdout()
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = scaffold.Title(filepath.Base(dir))
		}

		fmt.Fprintf(out, "Creating new game site: %s\n\n", dir)
		if err := scaffold.Write(dir, scaffold.Data{SiteName: name, Year: time.Now().Year()}, out); err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Done! Next steps:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  cd %s\n", dir)
		fmt.Fprintln(out, "  gamesite serve")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Edit config/structure/*.json to reorder sections, content/*.json to add games.")
		fmt.Fprintln(out, "Set GAMESITE_ADMIN_PASSWORD and GAMESITE_SESSION_SECRET to enable /admin/.")
		return nil
	},
}

func init() {
	initCmd.Flags().String("name", "", "site name (default derived from dir)")
}
