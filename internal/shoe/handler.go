package shoe

import (
	"errors"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/shopspring/decimal"
	"github.com/wichananm65/shoe-shop-backend/internal/card"
	"github.com/wichananm65/shoe-shop-backend/internal/logger"
	"github.com/wichananm65/shoe-shop-backend/internal/user"
)

type Handler struct {
	service    *Service
	allowReset bool
	now        func() time.Time
}

// shoePayload is the write body for a shoe. Price is a pointer so a missing price can be
// told apart from a price of 0.
type shoePayload struct {
	Shoe
	Price *decimal.Decimal `json:"price"`
}

// toShoe returns the shoe and every field error found in the payload.
func (p shoePayload) toShoe() (Shoe, map[string]string) {
	s := p.Shoe
	if p.Price != nil {
		s.Price = *p.Price
	}
	errs := validateShoePayload(&s)
	if p.Price == nil {
		errs["price"] = "price is required"
	}
	return s, errs
}

func NewHandler(service *Service, allowReset bool) *Handler {
	return &Handler{service: service, allowReset: allowReset, now: time.Now}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/shoes", h.getShoes)
	app.Get("/api/v1/shoes/cards", h.getCards)
	app.Get("/api/v1/shoe/:slug", h.getShoe)

	app.Get("/shoes", h.shoesPage)
	app.Get("/shoe/:slug", h.shoePage)
	app.Get("/shoe/:slug/card", h.cardFragment)

	// dev-only endpoint to reset shoes, enabled when ALLOW_RESET_SHOES=1
	app.Post("/dev/reset-shoes", h.resetShoes)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/shoes", h.createShoe)
	app.Put("/api/v1/shoe/:slug", h.updateShoe)
	app.Delete("/api/v1/shoe/:slug", h.deleteShoe)
}

func parseListQuery(c *fiber.Ctx) (ListQuery, map[string]string) {
	errs := map[string]string{}
	q := ListQuery{}

	sortOrder, err := ParseSort(c.Query("sort"))
	if err != nil {
		errs["sort"] = "sort must be one of: newest, price"
	}
	q.Sort = sortOrder

	if v := c.Query("variant"); v != "" {
		variant, err := card.ParseVariant(v)
		if err != nil {
			errs["variant"] = "variant must be one of: new-release, on-sale, default"
		}
		q.Variant = variant
	}
	return q, errs
}

func (h *Handler) getShoes(c *fiber.Ctx) error {
	q, errs := parseListQuery(c)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.JSON(h.service.List(q))
}

// getCards returns card views; ?slug=a,b selects specific shoes in that order.
func (h *Handler) getCards(c *fiber.Ctx) error {
	if raw := c.Query("slug"); raw != "" {
		cards, err := h.service.CardsBySlugs(splitSlugs(raw))
		if err != nil {
			logger.ErrorLog(c.UserContext(), err, "list cards by slug failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(cards)
	}

	q, errs := parseListQuery(c)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.JSON(h.service.Cards(q))
}

func (h *Handler) getShoe(c *fiber.Ctx) error {
	s, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(s)
}

func (h *Handler) shoesPage(c *fiber.Ctx) error {
	q, errs := parseListQuery(c)
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return renderHTML(c, card.Page("Shoes", card.Grid(h.service.Cards(q))))
}

func (h *Handler) shoePage(c *fiber.Ctx) error {
	v, err := h.service.Card(c.Params("slug"))
	if err != nil {
		return notFoundOr500(c, err)
	}
	return renderHTML(c, card.Page(v.Name, card.Card(v)))
}

func (h *Handler) cardFragment(c *fiber.Ctx) error {
	v, err := h.service.Card(c.Params("slug"))
	if err != nil {
		return notFoundOr500(c, err)
	}
	return renderHTML(c, card.Card(v))
}

// resetShoes replaces the catalog with the posted list, or with the sample catalog when
// the body cannot be parsed. An empty array clears the catalog.
func (h *Handler) resetShoes(c *fiber.Ctx) error {
	if !h.allowReset {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var shoes []Shoe
	var payloads []shoePayload
	if err := c.BodyParser(&payloads); err != nil {
		sample, err := SampleShoes(h.now())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		shoes = sample
	} else {
		shoes = make([]Shoe, 0, len(payloads))
		seen := make(map[string]bool, len(payloads))
		for i, p := range payloads {
			s, ves := p.toShoe()
			if seen[s.Slug] {
				ves["slug"] = "slug is repeated"
			}
			if len(ves) > 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"index": i, "errors": ves})
			}
			seen[s.Slug] = true
			shoes = append(shoes, s)
		}
	}

	if err := h.service.ResetShoes(shoes); err != nil {
		if errors.Is(err, ErrSlugExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "slugs must be unique"})
		}
		logger.ErrorLog(c.UserContext(), err, "reset shoes failed")
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	logger.InfoLog(c.UserContext(), "catalog reset with %d shoes", len(shoes))
	return c.JSON(shoes)
}

// validateShoePayload collects every field error. A sale price above the base price is
// accepted.
func validateShoePayload(s *Shoe) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(s.Slug) == "" {
		errs["slug"] = "slug is required"
	}
	if strings.TrimSpace(s.Name) == "" {
		errs["name"] = "name is required"
	}
	if s.Price.IsNegative() {
		errs["price"] = "price must be >= 0"
	}
	if s.NumOfColors < 0 {
		errs["numOfColors"] = "numOfColors must be >= 0"
	}
	if s.ReleaseDate.IsZero() {
		errs["releaseDate"] = "releaseDate is required"
	}
	return errs
}

func (h *Handler) createShoe(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	p := new(shoePayload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	s, ves := p.toShoe()
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	now := h.now().UTC().Format(time.RFC3339)
	if s.CreatedAt == nil {
		s.CreatedAt = &now
	}
	s.UpdatedAt = &now

	created, err := h.service.Create(s)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Slug already exists"})
		}
		logger.ErrorLog(c.UserContext(), err, "create shoe failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateShoe(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	// c.Params aliases the request buffer and the slug is stored
	slug := utils.CopyString(c.Params("slug"))
	p := new(shoePayload)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	// the path decides which shoe is updated
	p.Slug = slug
	s, ves := p.toShoe()
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	now := h.now().UTC().Format(time.RFC3339)
	s.UpdatedAt = &now

	updated, err := h.service.Update(slug, s)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteShoe(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if err := h.service.Delete(c.Params("slug")); err != nil {
		return notFoundOr500(c, err)
	}
	return c.SendString("Shoe deleted")
}

func notFoundOr500(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).SendString("Shoe not found")
	}
	logger.ErrorLog(c.UserContext(), err, "shoe lookup failed")
	return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
}

func renderHTML(c *fiber.Ctx, component templ.Component) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.UserContext(), c.Response().BodyWriter())
}

func splitSlugs(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
