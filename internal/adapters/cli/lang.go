package cli

import (
	"fmt"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MegaNoam/CitizensCMD/internal/application"
	"github.com/MegaNoam/CitizensCMD/internal/config"
	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/domain/messages"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/i18n"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/resources"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/storage"
	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
	"github.com/MegaNoam/CitizensCMD/pkg/chatcolor"
)

func newLangService(cfg *config.Config) *application.LangService {
	return application.NewLangService(resources.NewBundle(), storage.NewDataFolder(cfg.DataDir))
}

// load runs the load sequence. Load errors are reported and turned into a
// non-zero exit code, but the (possibly empty) table is still returned.
func (a *app) load(cfg *config.Config, colorizer output.Colorizer) (*application.Messages, *entities.LoadResult) {
	res, err := newLangService(cfg).Load(cfg.Language)
	if err != nil {
		log.Printf("❌ lang: %s", loadErrorMessage(err))
		a.exitCode = ExitLoadError
	}
	msgs := application.NewMessages(res.Table, colorizer, i18n.NewTranslator(res.Table))
	return msgs, res
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Create or update the language file and report what changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			msgs, res := a.load(cfg, chatcolor.NewConsole())

			fmt.Fprintf(a.out, "language: %s\n", res.Language)
			fmt.Fprintf(a.out, "file:     %s\n", res.Path)
			fmt.Fprintf(a.out, "messages: %d\n", res.Table.Len())
			fmt.Fprintf(a.out, "status:   %s\n", describe(res))
			if missing := msgs.Missing(); len(missing) > 0 && res.Table.Len() > 0 {
				fmt.Fprintf(a.out, "missing:  %d (see `citizenscmd list --missing`)\n", len(missing))
			}
			return nil
		},
	}
}

func describe(res *entities.LoadResult) string {
	var parts []string
	switch {
	case res.Created && res.Written:
		parts = append(parts, "created")
	case res.Written:
		parts = append(parts, "updated")
	default:
		parts = append(parts, "up to date")
	}
	if res.Changed {
		parts = append(parts, "saved overrides applied")
	}
	if res.Fallback {
		parts = append(parts, "defaults from "+application.FallbackLanguage)
	}
	return strings.Join(parts, ", ")
}

func (a *app) getCmd() *cobra.Command {
	var (
		raw   bool
		codes bool
		sets  []string
	)
	cmd := &cobra.Command{
		Use:   "get <MESSAGE|messages.category.name>",
		Short: "Print one message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseData(sets)
			if err != nil {
				return fail(ExitUsageError, err)
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}
			var colorizer output.Colorizer = chatcolor.NewConsole()
			if codes {
				colorizer = chatcolor.NewColorizer()
			}
			msgs, _ := a.load(cfg, colorizer)

			msg, ok := resolveMessage(args[0])
			if !ok {
				if !strings.HasPrefix(args[0], entities.RootSection+".") {
					return fail(ExitUsageError, fmt.Errorf("unknown message %q", args[0]))
				}
				// Keys outside the enumeration can still be read from the file.
				text, _ := msgs.Lookup(entities.FlatKey(args[0]))
				if !raw {
					text = colorizer.Colorize(text)
				}
				fmt.Fprintln(a.out, text)
				return nil
			}

			if raw {
				fmt.Fprintln(a.out, msgs.Uncolored(msg))
			} else {
				fmt.Fprintln(a.out, msgs.Render(msg, data))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the text as written in the file")
	cmd.Flags().BoolVar(&codes, "codes", false, "print § chat codes instead of terminal colors")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "placeholder value as name=value (repeatable)")
	return cmd
}

// resolveMessage accepts a constant name such as NO_PERMISSION or its path.
func resolveMessage(arg string) (messages.Message, bool) {
	if m, ok := messages.Parse(arg); ok {
		return m, true
	}
	return messages.ByPath(entities.FlatKey(arg))
}

// parseData turns name=value pairs into template data.
func parseData(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	data := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q: want name=value", p)
		}
		data[k] = v
	}
	return data, nil
}

func (a *app) listCmd() *cobra.Command {
	var missingOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every message with its path and text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			msgs, _ := a.load(cfg, chatcolor.NewConsole())

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, m := range messages.All() {
				text, ok := msgs.Lookup(m.Path())
				if missingOnly && ok {
					continue
				}
				if !ok {
					text = "<missing>"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", m, m.Path(), text)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&missingOnly, "missing", false, "only list messages without text")
	return cmd
}
