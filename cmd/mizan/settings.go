package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change preferences",
		Long:  `Show or set the display preferences: locale, currency, and theme.`,
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			current := app.prefs.Get()

			fmt.Println(app.styles.Title.Render(app.t("settings.title")))
			fmt.Printf("%s %s\n",
				app.styles.Bold.Render(app.t("settings.language")+":"), current.Locale)
			fmt.Printf("%s %s (%s)\n",
				app.styles.Bold.Render(app.t("settings.currency")+":"),
				current.Currency, current.Currency.Symbol())
			fmt.Printf("%s %s",
				app.styles.Bold.Render(app.t("settings.theme")+":"), current.Theme)
			if current.Theme == model.ThemeSystem {
				fmt.Printf(" %s", app.styles.Subtle.Render(
					fmt.Sprintf("(→ %s)", app.prefs.ResolveTheme())))
			}
			fmt.Println()

			return nil
		},
	}
}

func setSettingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "locale <en|ar>",
		Short: "Set the display language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPreference(cmd, func(app *app) error {
				return app.prefs.SetLocale(cmd.Context(), model.Locale(args[0]))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "currency <USD|ILS|EUR|AED|SAR>",
		Short: "Set the display currency",
		Long:  `Set the display currency. Amounts are relabeled with the new symbol, not converted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPreference(cmd, func(app *app) error {
				return app.prefs.SetCurrency(cmd.Context(), model.Currency(args[0]))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "theme <light|dark|system>",
		Short: "Set the visual theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPreference(cmd, func(app *app) error {
				return app.prefs.SetTheme(cmd.Context(), model.Theme(args[0]))
			})
		},
	})

	return cmd
}

func setPreference(cmd *cobra.Command, apply func(*app) error) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := apply(app); err != nil {
		fmt.Println(app.userMessage(err))
		return err
	}

	fmt.Println(app.styles.Success.Render(app.t("settings.saved")))
	return nil
}
