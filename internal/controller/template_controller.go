package controller

import (
	"errors"

	"legal-assistant-be/internal/constant"
	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/pkg/serverutils"
	"legal-assistant-be/internal/service"
	"legal-assistant-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
)

type ITemplateController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type templateController struct {
	templateService service.ITemplateService
}

func NewTemplateController(templateService service.ITemplateService) ITemplateController {
	return &templateController{
		templateService: templateService,
	}
}

func (c *templateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/template/v1")
	h.Post("generate", c.Generate)
}

func (c *templateController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.templateService.Generate(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, rag.ErrUnknownTemplateType) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown template type, expected one of: dilekce, sozlesme, tutanak")
		}
		if errors.Is(err, rag.ErrNotConfigured) {
			return fiber.NewError(fiber.StatusServiceUnavailable, constant.LLMNotConfiguredMessage)
		}
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Case not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate template", res))
}
