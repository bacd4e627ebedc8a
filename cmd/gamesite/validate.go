package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/gamesite/content"
	"github.com/eringen/gamesite/structure"
)

var errInvalid = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check structure and content files",
	Long: `Validate parses every page structure file under the config directory and
every content file under the content directory. Malformed files fail the
command; unknown or mistyped sections are reported as warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false

		problems := structure.Validate(os.DirFS(appConfig.ConfigDir))
		for _, p := range problems {
			level := "warning"
			if p.Fatal {
				level = "error"
				failed = true
			}
			fmt.Fprintf(out, "%s: %s/%s\n", level, appConfig.ConfigDir, p)
		}

		site := structure.NewResolver(os.DirFS(appConfig.ConfigDir), nil, nil)
		if _, err := structure.Resolve[map[string]any](site, "site.json", nil); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "error: %s/site.json: %v\n", appConfig.ConfigDir, err)
			failed = true
		}

		cat, err := content.Load(os.DirFS(appConfig.ContentDir))
		if err != nil {
			fmt.Fprintf(out, "error: %s: %v\n", appConfig.ContentDir, err)
			failed = true
		} else {
			games, posts, categories, pages := cat.Counts()
			fmt.Fprintf(out, "content: %d games, %d posts, %d categories, %d pages\n", games, posts, categories, pages)
		}

		if failed {
			return errInvalid
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}
