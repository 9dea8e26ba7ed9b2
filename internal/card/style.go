package card

// Class names used by the card markup. Stylesheet below is the only place they are styled.
const (
	classLink         = "shoe-card"
	classWrapper      = "shoe-card__wrapper"
	classImageWrapper = "shoe-card__image-wrapper"
	classImage        = "shoe-card__image"
	classSpacer       = "shoe-card__spacer"
	classRow          = "shoe-card__row"
	className         = "shoe-card__name"
	classPrice        = "shoe-card__price"
	classPriceSale    = "shoe-card__price shoe-card__price--sale"
	classColorInfo    = "shoe-card__colors"
	classSalePrice    = "shoe-card__sale-price"
	classVariantTip   = "shoe-card__tip"
	classGrid         = "shoe-grid"
)

// Stylesheet is served inline by Page.
const Stylesheet = `
.shoe-grid{display:flex;flex-wrap:wrap;gap:32px}
.shoe-card{text-decoration:none;color:inherit;flex:1 1 280px;max-width:600px}
.shoe-card__wrapper{position:relative;display:flex;flex-direction:column}
.shoe-card__image-wrapper{position:relative;width:100%;background-color:#f2f3f3;border-radius:16px 16px 4px 4px;padding-top:40px;padding-bottom:32px}
.shoe-card__image{width:100%}
.shoe-card__spacer{display:block;height:12px}
.shoe-card__row{font-size:1rem;display:flex;justify-content:space-between}
.shoe-card__name{font-weight:500;color:hsl(220deg 5% 20%)}
.shoe-card__price{color:inherit;text-decoration:none}
.shoe-card__price--sale{color:#60666c;text-decoration:line-through}
.shoe-card__colors{color:hsl(220deg 5% 40%)}
.shoe-card__sale-price{font-weight:500;color:hsl(340deg 65% 47%)}
.shoe-card__tip{position:absolute;top:12px;right:-4px;text-align:right;border-radius:2px;font-family:'Raleway';font-size:10pt;font-weight:700;line-height:16px;padding:10px 7px;color:#fff}
`

func priceClass(onSale bool) string {
	if onSale {
		return classPriceSale
	}
	return classPrice
}
