package cli

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"i18njs/internal/config"
)

// Command names.
const (
	CmdExport   = "export"
	CmdFlatten  = "flatten"
	CmdSegments = "segments"
	CmdMigrate  = "migrate"
)

// App is the command-line surface. Flags default to the values loaded from
// the environment and override them when given.
type App struct {
	app     *kingpin.Application
	cfg     *config.Config
	locales []string
}

func NewApp(cfg *config.Config) *App {
	a := &App{cfg: cfg}
	app := kingpin.New("i18njs", "Export translation catalogs to JavaScript segment files.")
	app.HelpFlag.Short('h')

	app.Flag("config", "Export configuration file (YAML or TOML).").
		Short('c').Default(cfg.ConfigFile).StringVar(&cfg.ConfigFile)
	app.Flag("export-dir", "Directory of the default translations.js segment.").
		Default(cfg.ExportDir).StringVar(&cfg.ExportDir)
	app.Flag("locales-dir", "Directory holding go-i18n message files.").
		Default(cfg.LocalesDir).StringVar(&cfg.LocalesDir)
	app.Flag("locale", "Available locale; repeat for several. Defaults to the locales found in the catalog.").
		StringsVar(&a.locales)

	app.Command(CmdExport, "Write every resolved segment.").Default()
	app.Command(CmdFlatten, "Print all segments merged into one sorted JSON document.")
	app.Command(CmdSegments, "List the files an export would write.")
	app.Command(CmdMigrate, "Apply database migrations for the translations table.")

	a.app = app
	return a
}

// Parse parses args into the configuration and returns the selected
// command.
func (a *App) Parse(args []string) (string, error) {
	cmd, err := a.app.Parse(args)
	if err != nil {
		return "", err
	}
	if len(a.locales) > 0 {
		a.cfg.AvailableLocales = a.locales
	}
	return cmd, nil
}
