package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-creditos/internal/application/dto"
	"github.com/jhoicas/simulador-creditos/internal/application/simulation"
)

// SimulationHandler maneja las simulaciones de crédito.
type SimulationHandler struct {
	uc *simulation.SimulationUseCase
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(uc *simulation.SimulationUseCase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

// Simulate godoc
// @Summary      Simular crédito
// @Description  Calcula tasas, comisiones y la tabla de amortización completa.
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulationRequest  true  "Datos del crédito"
// @Success      200   {object}  dto.SimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.IdentifierErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/simulations [post]
func (h *SimulationHandler) Simulate(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Simulate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SimulatePDF godoc
// @Summary      Simular crédito en PDF
// @Description  Igual que POST /api/simulations pero devuelve la tabla como PDF descargable.
// @Tags         simulations
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.SimulationRequest  true  "Datos del crédito"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/simulations/pdf [post]
func (h *SimulationHandler) SimulatePDF(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, filename, err := h.uc.SimulatePDF(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// ValidateIdentifier godoc
// @Summary      Validar cédula para fondo especial
// @Tags         identifiers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IdentifierValidationRequest  true  "Cédula y producto FNG"
// @Success      200   {object}  dto.IdentifierValidationResponse
// @Failure      403   {object}  dto.IdentifierErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/identifiers/validate [post]
func (h *SimulationHandler) ValidateIdentifier(c *fiber.Ctx) error {
	var in dto.IdentifierValidationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ValidateIdentifier(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
