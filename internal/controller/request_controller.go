package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/pkg/serverutils"
	"parish-be/internal/service"
)

type IRequestController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	IssueCertificate(ctx *fiber.Ctx) error
}

type requestController struct {
	requestService     service.IRequestService
	certificateService service.ICertificateService
}

func NewRequestController(requestService service.IRequestService, certificateService service.ICertificateService) IRequestController {
	return &requestController{
		requestService:     requestService,
		certificateService: certificateService,
	}
}

func (c *requestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/requests")
	// Intake is public; everything after the middleware is admin-only.
	h.Post("", c.Submit)
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Patch(":id", c.UpdateStatus)
	h.Delete(":id", c.Delete)
	h.Post(":id/issue-certificate", c.IssueCertificate)
}

func (c *requestController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Request submitted", res))
}

func (c *requestController) List(ctx *fiber.Ctx) error {
	res, err := c.requestService.List(ctx.Context(), ctx.Query("status"), ctx.Query("category"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list requests", res))
}

func (c *requestController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.requestService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show request", res))
}

func (c *requestController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateRequestStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.UpdateStatus(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Request status updated", res))
}

func (c *requestController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.requestService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Request deleted", fiber.Map{}))
}

func (c *requestController) IssueCertificate(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.IssueCertificateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.certificateService.Issue(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Certificate issued", res))
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NewValidation("id must be a valid UUID")
	}
	return id, nil
}
