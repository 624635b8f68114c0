package barcode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/sgi-guatemart/internal/application/ports"
	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/pkg/logger"
)

// Verificar en tiempo de compilación que OpenFoodFacts implementa BarcodeLookup.
var _ ports.BarcodeLookup = (*OpenFoodFacts)(nil)

const (
	// SourceName se muestra al usuario como origen de los datos.
	SourceName = "Open Food Facts"

	DefaultBaseURL = "https://world.openfoodfacts.org"
	DefaultTimeout = 5 * time.Second
)

// Resultados de una consulta, usados como etiqueta de métricas.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// OpenFoodFacts adaptador de BarcodeLookup sobre la API pública v0 de Open Food Facts.
// Usa net/http de la librería estándar; la API no tiene SDK oficial en Go.
type OpenFoodFacts struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	observe    func(result string)
}

// Option configura el cliente.
type Option func(*OpenFoodFacts)

// WithObserver registra una función que recibe el resultado de cada consulta.
func WithObserver(fn func(result string)) Option {
	return func(c *OpenFoodFacts) { c.observe = fn }
}

// WithHTTPClient reemplaza el cliente HTTP (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *OpenFoodFacts) { c.httpClient = hc }
}

// NewOpenFoodFacts construye el adaptador. baseURL vacío usa la instancia pública.
func NewOpenFoodFacts(baseURL string, timeout time.Duration, log *logger.Logger, opts ...Option) *OpenFoodFacts {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	c := &OpenFoodFacts{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Estructuras internas de la respuesta v0 ──────────────────────────────────

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ProductName string `json:"product_name"`
	Brands      string `json:"brands"`
	Categories  string `json:"categories"`
	ImageURL    string `json:"image_url"`
	Quantity    string `json:"quantity"`
	GenericName string `json:"generic_name"`
}

// Lookup consulta GET {base}/api/v0/product/{code}.json.
// status distinto de 1 o HTTP 404 es "no encontrado" (nil, nil). Fallos de red, timeouts
// y respuestas inesperadas devuelven ErrExternalService y quedan registrados en el log.
func (c *OpenFoodFacts) Lookup(ctx context.Context, code string) (*ports.BarcodeProduct, error) {
	product, err := c.lookup(ctx, code)
	switch {
	case err != nil:
		c.log.Warn().Err(err).Str("codigo_barras", code).Msg("consulta de código de barras fallida")
		c.record(ResultError)
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	case product == nil:
		c.record(ResultNotFound)
	default:
		c.record(ResultFound)
	}
	return product, nil
}

func (c *OpenFoodFacts) lookup(ctx context.Context, code string) (*ports.BarcodeProduct, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "SGI-GuateMart/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	var body offResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decodificar respuesta: %w", err)
	}
	if body.Status != 1 {
		return nil, nil
	}
	return &ports.BarcodeProduct{
		Barcode:     code,
		Name:        body.Product.ProductName,
		Brand:       body.Product.Brands,
		Categories:  body.Product.Categories,
		ImageURL:    body.Product.ImageURL,
		Quantity:    body.Product.Quantity,
		GenericName: body.Product.GenericName,
		Source:      SourceName,
	}, nil
}

func (c *OpenFoodFacts) record(result string) {
	if c.observe != nil {
		c.observe(result)
	}
}
