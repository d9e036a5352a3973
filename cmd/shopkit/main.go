package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/go-shop-kit/pkg/api"
	"github.com/shouni/go-shop-kit/pkg/config"
	"github.com/shouni/go-shop-kit/pkg/provinces"
)

// app はサブコマンドが共有する依存関係です。
type app struct {
	ctx context.Context
	cfg *config.Config
	out io.Writer

	httpClient httpkit.ClientInterface
}

func (a *app) shopClient() (*api.Client, error) {
	if a.cfg.ShopAPIBaseURL == "" {
		return nil, errors.New("SHOP_API_BASE_URL が設定されていません")
	}
	return api.NewClient(a.httpClient, a.cfg.ShopAPIBaseURL)
}

func (a *app) provincesClient() (*provinces.Client, error) {
	return provinces.NewClient(a.httpClient, a.cfg.ProvincesAPIURL)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(nil, flags.Default)
	parser.Name = "shopkit"

	mustAdd := func(name, short, long string, cmd any) {
		if _, err := parser.AddCommand(name, short, long, cmd); err != nil {
			panic(fmt.Sprintf("command %s: %v", name, err))
		}
	}
	mustAdd("image", "Resolve a raw product image field",
		"Prints the thumbnail URL and the gallery for a raw image field.", &imageCommand{app: a})
	mustAdd("render", "Render an <img> element for a raw image field", "", &renderCommand{app: a})
	mustAdd("price", "Format an amount as VND", "", &priceCommand{app: a})
	mustAdd("catalog", "Resolve images for a product dump", "", &catalogCommand{app: a})
	mustAdd("provinces", "Look up Vietnamese administrative divisions", "", &provincesCommand{app: a})
	mustAdd("categories", "List categories", "", &categoriesCommand{app: a})
	mustAdd("addresses", "List a user's addresses", "", &addressesCommand{app: a})
	mustAdd("recommend", "List recommendations for a user", "", &recommendCommand{app: a})
	return parser
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.Level(cfg.LogLevel),
	})
	slog.SetDefault(slog.New(handler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		ctx:        ctx,
		cfg:        cfg,
		out:        os.Stdout,
		httpClient: httpkit.New(cfg.HTTPTimeout),
	}

	if _, err := newParser(a).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		slog.Error("コマンドの実行に失敗しました", "error", err)
		stop()
		os.Exit(1)
	}
}
