package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sgi-guatemart/internal/application/dto"
)

const productsURL = "/productos/"

// ProductHandler CRUD de productos y búsqueda por código de barras.
type ProductHandler struct {
	*renderer
	uc      productService
	barcode barcodeService
}

func newProductHandler(r *renderer, uc productService, barcode barcodeService) *ProductHandler {
	return &ProductHandler{renderer: r, uc: uc, barcode: barcode}
}

// List GET /productos/?q=&page=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), perms(c), c.Query("q"), c.Query("page"))
	if err != nil {
		h.logError(c, err, "Error al cargar productos")
		h.flash(c, dto.FlashError, "Error al cargar productos")
		out = &dto.ProductListResponse{Search: c.Query("q")}
	}
	return h.render(c, "productos/listar", "Productos", fiber.Map{"List": out})
}

// View GET /productos/:id/ver
func (h *ProductHandler) View(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	out, err := h.uc.Get(c.UserContext(), perms(c), id)
	if err != nil {
		return h.fail(c, err, productsURL, productsURL, "Producto no encontrado", "Error al cargar producto")
	}
	return h.render(c, "productos/ver", out.Product.Name, fiber.Map{"Detail": out})
}

// CreateForm GET /productos/crear
func (h *ProductHandler) CreateForm(c *fiber.Ctx) error {
	return h.renderForm(c, "Nuevo producto", "/productos/crear", dto.ProductForm{}, false)
}

// Create POST /productos/crear
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		h.flash(c, dto.FlashError, "Formulario inválido")
		return c.Redirect("/productos/crear")
	}
	out, err := h.uc.Create(c.UserContext(), form)
	if err != nil {
		return h.fail(c, err, "/productos/crear", productsURL, "Producto no encontrado", "Error al crear producto")
	}
	h.flash(c, dto.FlashSuccess, "Producto "+out.Name+" creado exitosamente")
	return c.Redirect(productsURL)
}

// EditForm GET /productos/:id/editar
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	out, err := h.uc.Get(c.UserContext(), perms(c), id)
	if err != nil {
		return h.fail(c, err, productsURL, productsURL, "Producto no encontrado", "Error al cargar producto")
	}
	return h.renderForm(c, "Editar producto", editProductURL(id), productFormFrom(out.Product), true)
}

// Update POST /productos/:id/editar. SKU y stock no se modifican.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		h.flash(c, dto.FlashError, "Formulario inválido")
		return c.Redirect(editProductURL(id))
	}
	if _, err := h.uc.Update(c.UserContext(), id, form); err != nil {
		return h.fail(c, err, editProductURL(id), productsURL, "Producto no encontrado", "Error al actualizar producto")
	}
	h.flash(c, dto.FlashSuccess, "Producto actualizado exitosamente")
	return c.Redirect(productsURL)
}

// Delete POST /productos/:id/eliminar. Baja lógica.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err, productsURL, productsURL, "Producto no encontrado", "Error al eliminar producto")
	}
	h.flash(c, dto.FlashSuccess, "Producto eliminado exitosamente")
	return c.Redirect(productsURL)
}

// SearchBarcode POST /productos/buscar-barcode (JSON). Siempre responde 200; el
// resultado va en success/mensaje/error para que el formulario lo muestre.
func (h *ProductHandler) SearchBarcode(c *fiber.Ctx) error {
	var req dto.BarcodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(dto.BarcodeResponse{Error: "Solicitud inválida"})
	}
	return c.JSON(h.barcode.Search(c.UserContext(), req.Code))
}

func (h *ProductHandler) renderForm(c *fiber.Ctx, title, action string, form dto.ProductForm, editing bool) error {
	data, err := h.uc.FormData(c.UserContext())
	if err != nil {
		h.logError(c, err, "Error al cargar catálogos")
		h.flash(c, dto.FlashError, "Error al cargar categorías y proveedores")
		data = &dto.ProductFormData{}
	}
	return h.render(c, "productos/form", title, fiber.Map{
		"Form":    form,
		"Data":    data,
		"Action":  action,
		"Editing": editing,
	})
}

func editProductURL(id int64) string {
	return "/productos/" + strconv.FormatInt(id, 10) + "/editar"
}

func productFormFrom(p dto.ProductResponse) dto.ProductForm {
	return dto.ProductForm{
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    optionalID(p.CategoryID),
		SupplierID:    optionalID(p.SupplierID),
		PurchasePrice: fixed(p.PurchasePrice),
		SalePrice:     fixed(p.SalePrice),
		CurrentStock:  strconv.Itoa(p.CurrentStock),
		MinStock:      strconv.Itoa(p.MinStock),
		MaxStock:      strconv.Itoa(p.MaxStock),
		Location:      p.Location,
	}
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func fixed(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
