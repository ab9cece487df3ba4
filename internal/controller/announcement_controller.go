package controller

import (
	"github.com/gofiber/fiber/v2"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/pkg/serverutils"
	"parish-be/internal/service"
)

type IAnnouncementController interface {
	RegisterRoutes(r fiber.Router)
	ListPublic(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type announcementController struct {
	announcementService service.IAnnouncementService
}

func NewAnnouncementController(announcementService service.IAnnouncementService) IAnnouncementController {
	return &announcementController{
		announcementService: announcementService,
	}
}

func (c *announcementController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/announcements")
	h.Get("", c.ListPublic)
	h.Use(serverutils.JwtMiddleware)
	h.Get("all", c.ListAll)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *announcementController) ListPublic(ctx *fiber.Ctx) error {
	res, err := c.announcementService.List(ctx.Context(), true)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list announcements", res))
}

func (c *announcementController) ListAll(ctx *fiber.Ctx) error {
	res, err := c.announcementService.List(ctx.Context(), false)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list announcements", res))
}

func (c *announcementController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.announcementService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Announcement created", res))
}

func (c *announcementController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateAnnouncementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.announcementService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Announcement updated", res))
}

func (c *announcementController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.announcementService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Announcement deleted", fiber.Map{}))
}
