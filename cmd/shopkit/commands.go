package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-shop-kit/pkg/catalog"
	"github.com/shouni/go-shop-kit/pkg/currency"
	"github.com/shouni/go-shop-kit/pkg/imageref"
	"github.com/shouni/go-shop-kit/pkg/imageview"
	"github.com/shouni/go-shop-kit/pkg/urlutil"
)

type imageCommand struct {
	app  *app
	Args struct {
		Raw string `positional-arg-name:"raw" description:"raw image field"`
	} `positional-args:"yes"`
}

func (c *imageCommand) Execute(_ []string) error {
	gallery := imageref.ResolveAllImages(c.Args.Raw)
	for i, u := range gallery {
		gallery[i] = urlutil.NormalizeURL(u)
	}
	return c.app.printJSON(map[string]any{
		"thumbnail": urlutil.NormalizeURL(imageref.ResolveSingleImage(c.Args.Raw)),
		"gallery":   gallery,
	})
}

type renderCommand struct {
	app      *app
	Alt      string `long:"alt" description:"alt text"`
	Fallback string `long:"fallback" description:"image shown when the field is empty"`
	Width    string `long:"width" description:"CSS width"`
	Args     struct {
		Raw string `positional-arg-name:"raw" description:"raw image field"`
	} `positional-args:"yes"`
}

func (c *renderCommand) Execute(_ []string) error {
	props := imageview.Props{
		Fallback: c.Fallback,
		Alt:      c.Alt,
	}
	if c.Args.Raw != "" {
		// 解決に失敗したときも --fallback を使う
		uri := imageref.NewResolver(imageref.WithPlaceholder(c.Fallback)).Single(c.Args.Raw)
		props.URI = &uri
	}
	if c.Width != "" {
		props.Style = map[string]string{"width": c.Width}
	}
	if err := imageview.Render(c.app.out, props); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.app.out)
	return err
}

type priceCommand struct {
	app  *app
	Args struct {
		Amount string `positional-arg-name:"amount" required:"yes"`
	} `positional-args:"yes"`
}

func (c *priceCommand) Execute(_ []string) error {
	amount, err := decimal.NewFromString(c.Args.Amount)
	if err != nil {
		return fmt.Errorf("金額が不正です: %w", err)
	}
	formatted, err := currency.FormatVND(amount)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.out, formatted)
	return err
}

type catalogCommand struct {
	app  *app
	All  bool `long:"all" description:"treat the path as a directory and load every .json file"`
	Args struct {
		Path string `positional-arg-name:"path" required:"yes"`
	} `positional-args:"yes"`
}

func (c *catalogCommand) Execute(_ []string) error {
	loader, err := catalog.NewLoader(remoteio.NewUniversalInputReader(nil, nil), nil)
	if err != nil {
		return err
	}
	if c.All {
		products, err := loader.LoadAll(c.app.ctx, c.Args.Path)
		if err != nil {
			return err
		}
		return c.app.printJSON(loader.Resolve(products))
	}
	views, err := loader.LoadAndResolve(c.app.ctx, c.Args.Path)
	if err != nil {
		return err
	}
	return c.app.printJSON(views)
}

type provincesCommand struct {
	app      *app
	Province int `long:"province" description:"list districts of this province code"`
	District int `long:"district" description:"list wards of this district code"`
}

func (c *provincesCommand) Execute(_ []string) error {
	client, err := c.app.provincesClient()
	if err != nil {
		return err
	}
	switch {
	case c.District > 0:
		wards, err := client.ListWards(c.app.ctx, c.District)
		if err != nil {
			return err
		}
		return c.app.printJSON(wards)
	case c.Province > 0:
		districts, err := client.ListDistricts(c.app.ctx, c.Province)
		if err != nil {
			return err
		}
		return c.app.printJSON(districts)
	default:
		ps, err := client.ListProvinces(c.app.ctx)
		if err != nil {
			return err
		}
		return c.app.printJSON(ps)
	}
}

type categoriesCommand struct {
	app *app
}

func (c *categoriesCommand) Execute(_ []string) error {
	client, err := c.app.shopClient()
	if err != nil {
		return err
	}
	cats, err := client.ListCategories(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.printJSON(cats)
}

type userArgs struct {
	UserID int64 `positional-arg-name:"user-id" required:"yes"`
}

type addressesCommand struct {
	app  *app
	Args userArgs `positional-args:"yes"`
}

func (c *addressesCommand) Execute(_ []string) error {
	client, err := c.app.shopClient()
	if err != nil {
		return err
	}
	addrs, err := client.ListAddresses(c.app.ctx, c.Args.UserID)
	if err != nil {
		return err
	}
	return c.app.printJSON(addrs)
}

type recommendCommand struct {
	app  *app
	Args userArgs `positional-args:"yes"`
}

func (c *recommendCommand) Execute(_ []string) error {
	client, err := c.app.shopClient()
	if err != nil {
		return err
	}
	recs, err := client.ListRecommendations(c.app.ctx, c.Args.UserID)
	if err != nil {
		return err
	}
	return c.app.printJSON(recs)
}
