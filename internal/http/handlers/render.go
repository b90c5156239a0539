package handlers

import (
	"net/url"

	applog "chavecerta/internal/log"
	"chavecerta/internal/ui"

	"github.com/gofiber/fiber/v2"
)

// Layout wraps every page with the shared document head and font.
const Layout = "layouts/main"

const (
	siteTitle       = "ChaveCerta - Aluguel de Imóveis"
	siteDescription = "A plataforma mais completa para aluguel de imóveis no Brasil. Encontre apartamentos, casas, kitnets e imóveis comerciais com segurança e praticidade."
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = siteTitle
	}
	data["Description"] = siteDescription
	if _, ok := data["Header"]; !ok {
		data["Header"] = headerFor(c)
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data, Layout)
}

func headerFor(c *fiber.Ctx) *ui.Header {
	q, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	return ui.NewHeader(c.Path(), q)
}

// NotFound renders the friendly 404 page.
func NotFound(c *fiber.Ctx) error {
	return notFound(c, "Página não encontrada")
}

func notFound(c *fiber.Ctx, msg string) error {
	c.Status(fiber.StatusNotFound)
	return render(c, "notfound", fiber.Map{"Message": msg, "Title": "Não encontrado - ChaveCerta"})
}

const friendlyError = "Algo deu errado. Tente novamente."

// ErrorHandler logs the failure and shows a message without internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	applog.Error(c, "server.error", err, nil)
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok && fe.Code < 500 {
		code = fe.Code
	}
	msg := friendlyError
	if code == fiber.StatusNotFound {
		msg = "Página não encontrada"
	}
	c.Status(code)
	if rerr := render(c, "notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}
