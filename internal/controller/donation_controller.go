package controller

import (
	"github.com/gofiber/fiber/v2"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/pkg/serverutils"
	"parish-be/internal/service"
)

type IDonationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type donationController struct {
	donationService service.IDonationService
}

func NewDonationController(donationService service.IDonationService) IDonationController {
	return &donationController{
		donationService: donationService,
	}
}

func (c *donationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/donations")
	h.Get("", c.List)
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *donationController) List(ctx *fiber.Ctx) error {
	res, err := c.donationService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list donations", res))
}

func (c *donationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Donation recorded", res))
}

func (c *donationController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDonationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Donation updated", res))
}

func (c *donationController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.donationService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Donation deleted", fiber.Map{}))
}
