package controller

import (
	"github.com/gofiber/fiber/v2"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/pkg/serverutils"
	"parish-be/internal/service"
)

type IRecordController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
	Unarchive(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type recordController struct {
	recordService service.IRecordService
}

func NewRecordController(recordService service.IRecordService) IRecordController {
	return &recordController{
		recordService: recordService,
	}
}

func (c *recordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/records")
	// The registry itself is public; archived rows only show up when asked.
	h.Get("", c.List)
	h.Use(serverutils.JwtMiddleware)
	h.Get(":id", c.Show)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Post(":id/archive", c.Archive)
	h.Post(":id/unarchive", c.Unarchive)
	h.Delete(":id", c.Delete)
}

func (c *recordController) List(ctx *fiber.Ctx) error {
	includeArchived := ctx.QueryBool("includeArchived", false)

	res, err := c.recordService.List(ctx.Context(), ctx.Query("type"), includeArchived)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list records", res))
}

func (c *recordController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.recordService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show record", res))
}

func (c *recordController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Record created", res))
}

func (c *recordController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Record updated", res))
}

func (c *recordController) Archive(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ArchiveRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id
	if req.ArchivedBy == "" {
		if username, ok := ctx.Locals("username").(string); ok {
			req.ArchivedBy = username
		}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.Archive(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Record archived", res))
}

func (c *recordController) Unarchive(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.recordService.Unarchive(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Record unarchived", res))
}

func (c *recordController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.recordService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Record deleted", fiber.Map{}))
}
