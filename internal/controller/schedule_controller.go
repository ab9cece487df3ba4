package controller

import (
	"github.com/gofiber/fiber/v2"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/pkg/serverutils"
	"parish-be/internal/service"
)

type IScheduleController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetNote(ctx *fiber.Ctx) error
	UpsertNote(ctx *fiber.Ctx) error
}

type scheduleController struct {
	scheduleService service.IScheduleService
}

func NewScheduleController(scheduleService service.IScheduleService) IScheduleController {
	return &scheduleController{
		scheduleService: scheduleService,
	}
}

func (c *scheduleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/schedules")
	h.Get("", c.List)
	h.Get("note", c.GetNote)
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Put("note", c.UpsertNote)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *scheduleController) List(ctx *fiber.Ctx) error {
	res, err := c.scheduleService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list schedules", res))
}

func (c *scheduleController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scheduleService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Schedule created", res))
}

func (c *scheduleController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scheduleService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Schedule updated", res))
}

func (c *scheduleController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.scheduleService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Schedule deleted", fiber.Map{}))
}

func (c *scheduleController) GetNote(ctx *fiber.Ctx) error {
	res, err := c.scheduleService.GetNote(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show schedule note", res))
}

func (c *scheduleController) UpsertNote(ctx *fiber.Ctx) error {
	var req dto.UpsertScheduleNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scheduleService.UpsertNote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Schedule note saved", res))
}
