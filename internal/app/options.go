package app

import (
	"fmt"

	"spatial-keyboard/internal/config"
	"spatial-keyboard/internal/keyboard"
	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/ui"
)

// OptionsFromPrefs loads the layout and stylesheet named in p. Empty paths keep the
// built-in ones; a file that fails to load is an error so a typo is not silently ignored.
func OptionsFromPrefs(p config.Prefs, log *logger.Logger) (Options, error) {
	opts := DefaultOptions()
	opts.Log = log
	if p.WrapColumns > 0 {
		opts.Panel.Columns = p.WrapColumns
	}
	if p.LayoutPath != "" {
		l, err := keyboard.LoadLayout(p.LayoutPath)
		if err != nil {
			return opts, fmt.Errorf("app: layout: %w", err)
		}
		opts.Layout = l
		log.Infof("app: layout %q from %s", l.Name, p.LayoutPath)
	}
	if p.StylePath != "" {
		sheet, err := ui.LoadCSS(p.StylePath)
		if err != nil {
			return opts, fmt.Errorf("app: stylesheet: %w", err)
		}
		opts.Stylesheet = sheet
		log.Infof("app: stylesheet %s (%d rules)", p.StylePath, len(sheet.Rules))
	}
	return opts, nil
}
