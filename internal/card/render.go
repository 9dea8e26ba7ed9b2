package card

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Card renders a single product card. The badge element is only emitted for variants
// that have one.
func Card(v View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		href := string(templ.URL(v.Href))
		if _, err := fmt.Fprintf(w, `<a class="%s" href="%s"><article class="%s">`,
			classLink, templ.EscapeString(href), classWrapper); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<div class="%s"><img class="%s" alt="" src="%s"></div><span class="%s"></span>`,
			classImageWrapper, classImage, templ.EscapeString(v.ImageSrc), classSpacer); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<div class="%s"><h3 class="%s">%s</h3><span class="%s">%s</span></div>`,
			classRow, className, templ.EscapeString(v.Name), priceClass(v.OnSale), templ.EscapeString(v.Price)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<div class="%s"><p class="%s">%s</p>`,
			classRow, classColorInfo, templ.EscapeString(v.Colors)); err != nil {
			return err
		}
		if v.OnSale {
			if _, err := fmt.Fprintf(w, `<span class="%s">%s</span>`,
				classSalePrice, templ.EscapeString(v.SalePrice)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if v.Badge != nil {
			if _, err := fmt.Fprintf(w, `<span class="%s" data-variant="%s" style="background-color:%s">%s</span>`,
				classVariantTip, v.Variant, v.Badge.Color, templ.EscapeString(v.Badge.Text)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</article></a>`)
		return err
	})
}

// Grid renders the cards in order inside a flex container.
func Grid(views []View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="%s">`, classGrid); err != nil {
			return err
		}
		for _, v := range views {
			if err := Card(v).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// Page wraps body in a minimal HTML document carrying the card stylesheet.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title><style>%s</style></head><body>`,
			templ.EscapeString(title), Stylesheet); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
