package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/goliatone/go-settingstab/pkg/admin"
	"github.com/goliatone/go-settingstab/pkg/hooks"
	"github.com/goliatone/go-settingstab/pkg/host"
	"github.com/goliatone/go-settingstab/pkg/loader"
	"github.com/goliatone/go-settingstab/pkg/model"
	"github.com/goliatone/go-settingstab/pkg/prompt"
	"github.com/goliatone/go-settingstab/pkg/schema"
	"github.com/goliatone/go-settingstab/pkg/tab"
)

const usage = `usage: settingstab-cli <command> [flags] <tab.yaml>

commands:
  show     print the current settings of the tab
  render   write the settings page HTML
  edit     prompt for every field and save the answers
  schema   print the OpenAPI schema of the tab values
`

func main() {
	c := &cli{stdout: os.Stdout, stderr: os.Stderr}
	if err := c.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("settingstab: "+err.Error()))
		os.Exit(1)
	}
}

type cli struct {
	stdout io.Writer
	stderr io.Writer
	// driver overrides the interactive prompt driver used by edit.
	driver prompt.Driver
}

type session struct {
	cfg      Config
	doc      loader.Document
	store    host.OptionStore
	hooks    *hooks.Registry
	logger   *slog.Logger
	page     string
	request  host.Request
	baseOpts []tab.Option
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return errors.New("missing command")
	}
	command := args[0]

	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	flags.SetOutput(c.stderr)
	configPath := flags.String("config", "", "config file (TOML)")
	output := flags.String("output", "", "output file for render and schema (stdout if empty)")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		fmt.Fprint(c.stderr, usage)
		return errors.New("expected exactly one tab definition file")
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	logger := newSlog(c.stderr, cfg.Log)

	doc, err := loader.LoadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	st, closer, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
	}()

	page := cfg.Page
	if doc.Page != "" {
		page = doc.Page
	}
	s := &session{
		cfg:     cfg,
		doc:     doc,
		store:   st,
		hooks:   hooks.NewRegistry(),
		logger:  logger,
		page:    page,
		request: host.NewRequest(page, doc.Slug),
	}
	s.baseOpts = []tab.Option{
		tab.WithStore(st),
		tab.WithHooks(s.hooks),
		tab.WithRequest(s.request),
		tab.WithPage(page),
		tab.WithAssetBaseURL(cfg.Assets.BaseURL),
		tab.WithLogger(slogEvents{log: logger}),
	}
	logger.Debug("loaded tab", "slug", doc.Slug, "source", doc.Source, "fields", len(doc.Fields), "store", cfg.Store.Driver)

	switch command {
	case "show":
		return c.show(ctx, s)
	case "render":
		return c.render(ctx, s, *output)
	case "edit":
		return c.edit(ctx, s)
	case "schema":
		return c.schema(ctx, s, *output)
	default:
		fmt.Fprint(c.stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (s *session) build(ctx context.Context, extra ...tab.Option) (*tab.Tab, error) {
	opts := append(append([]tab.Option(nil), s.baseOpts...), extra...)
	return tab.New(ctx, s.doc.Name, s.doc.Slug, s.doc.Fields, opts...)
}

func (c *cli) show(ctx context.Context, s *session) error {
	t, err := s.build(ctx)
	if err != nil {
		return err
	}
	value, err := s.hooks.ApplyFilters(ctx, host.FilterSettingsTabs, host.Tabs{})
	if err != nil {
		return err
	}
	label := t.Name()
	if tabs, ok := value.(host.Tabs); ok {
		if name, found := tabs.Get(t.Slug()); found {
			label = name
		}
	}
	_, err = io.WriteString(c.stdout, renderSettings(t, label))
	return err
}

func (c *cli) render(ctx context.Context, s *session, output string) error {
	renderer, err := admin.New()
	if err != nil {
		return err
	}
	var body bytes.Buffer
	queue := host.NewAssetQueue()
	t, err := s.build(ctx,
		tab.WithAssets(queue),
		tab.WithFieldRenderer(&admin.FieldRenderer{Renderer: renderer, Store: s.store, Out: &body, Slug: s.doc.Slug}),
	)
	if err != nil {
		return err
	}

	if err := s.hooks.DoAction(ctx, host.ActionAdminEnqueueScripts); err != nil {
		return err
	}
	if err := s.hooks.DoAction(ctx, host.SettingsAction(t.Slug())); err != nil {
		return err
	}

	var page bytes.Buffer
	page.WriteString(string(queue.HeadTags()))
	page.Write(body.Bytes())
	page.WriteString(string(queue.FooterTags()))
	return c.write(output, page.Bytes(), "page")
}

func (c *cli) edit(ctx context.Context, s *session) error {
	driver := c.driver
	if driver == nil {
		driver = prompt.SurveyDriver(c.stdout)
	}
	editor := prompt.NewEditor(prompt.WithDriver(driver), prompt.WithStore(s.store))
	saver := host.OptionSaverFunc(func(ctx context.Context, fields []model.Field) error {
		form, err := editor.Edit(ctx, fields)
		if err != nil {
			return err
		}
		return admin.NewSaver(s.store, admin.StaticForm(form)).SaveFields(ctx, fields)
	})

	t, err := s.build(ctx, tab.WithOptionSaver(saver))
	if err != nil {
		return err
	}
	err = s.hooks.DoAction(ctx, host.UpdateOptionsAction(t.Slug()))
	var invalid admin.FieldErrors
	if errors.As(err, &invalid) {
		ids := make([]string, 0, len(invalid))
		for id := range invalid {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		fmt.Fprint(c.stdout, renderFieldErrors(t.Slug(), invalid, ids))
		return errors.New("validation failed")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, okStyle.Render("saved "+t.Slug()))
	return nil
}

func (c *cli) schema(ctx context.Context, s *session, output string) error {
	t, err := s.build(ctx)
	if err != nil {
		return err
	}
	data, err := schema.MarshalJSON(schema.Generate(t.Slug(), t.Fields()))
	if err != nil {
		return err
	}
	return c.write(output, append(data, '\n'), "schema")
}

func (c *cli) write(output string, data []byte, what string) error {
	if output == "" {
		_, err := c.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", what, err)
	}
	fmt.Fprintf(c.stdout, "%s written to %s\n", what, output)
	return nil
}
