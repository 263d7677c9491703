package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/backup"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export all data to a JSON file",
		Long:  `Write expenses, income, goals and categories to a single JSON document. The default file name is finance-data-<date>.json in the current directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			path := backup.Filename(time.Now())
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := backup.ExportAll(ctx, app.kv)
			if err != nil {
				return err
			}

			encoded, err := doc.Encode()
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, encoded, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Println(app.styles.Success.Render(
				fmt.Sprintf("%s → %s", app.t("settings.exportSuccess"), path)))
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import data from a JSON export",
		Long:  `Restore collections from an export file. Fields present in the document replace the stored collections; absent fields are left untouched. A malformed document changes nothing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			if err := backup.ImportAll(ctx, app.kv, data); err != nil {
				fmt.Println(app.styles.Error.Render(app.t("settings.importFailed")))
				return err
			}

			fmt.Println(app.styles.Success.Render(app.t("settings.importSuccess")))
			return nil
		},
	}
}
