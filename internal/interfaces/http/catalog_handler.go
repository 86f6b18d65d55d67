package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
	"github.com/jhoicas/simulador-creditos/internal/application/simulation"
)

// CatalogHandler expone los catálogos de la parametría.
type CatalogHandler struct {
	uc *simulation.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *simulation.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Regions godoc
// @Summary      Listar departamentos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.RegionResponse
// @Router       /api/catalog/regions [get]
func (h *CatalogHandler) Regions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Regions())
}

// Municipalities godoc
// @Summary      Listar municipios de un departamento con su tipología
// @Tags         catalog
// @Produce      json
// @Param        region  path  string  true  "Departamento"
// @Success      200  {array}   dto.MunicipalityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/regions/{region}/municipalities [get]
func (h *CatalogHandler) Municipalities(c *fiber.Ctx) error {
	region, err := url.PathUnescape(c.Params("region"))
	if err != nil || region == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REGION", Message: "departamento es requerido"})
	}
	out, err := h.uc.Municipalities(region)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Modalities godoc
// @Summary      Listar modalidades de crédito
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.ModalityResponse
// @Router       /api/catalog/modalities [get]
func (h *CatalogHandler) Modalities(c *fiber.Ctx) error {
	return c.JSON(h.uc.Modalities())
}

// Frequencies godoc
// @Summary      Listar periodicidades de pago
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.FrequencyResponse
// @Router       /api/catalog/frequencies [get]
func (h *CatalogHandler) Frequencies(c *fiber.Ctx) error {
	return c.JSON(h.uc.Frequencies())
}

// GuaranteeProducts godoc
// @Summary      Listar productos FNG
// @Tags         catalog
// @Produce      json
// @Param        modality  query  string  false  "Filtrar por modalidad"
// @Success      200  {array}  dto.GuaranteeProductResponse
// @Router       /api/catalog/fng-products [get]
func (h *CatalogHandler) GuaranteeProducts(c *fiber.Ctx) error {
	return c.JSON(h.uc.GuaranteeProducts(c.Query("modality")))
}
