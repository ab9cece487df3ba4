package controller

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/pkg/serverutils"
	"parish-be/internal/service"
)

type ICertificateController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type certificateController struct {
	certificateService service.ICertificateService
}

func NewCertificateController(certificateService service.ICertificateService) ICertificateController {
	return &certificateController{
		certificateService: certificateService,
	}
}

func (c *certificateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/certificates")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post(":id/upload", c.Upload)
	h.Get(":id/download", c.Download)
}

func (c *certificateController) List(ctx *fiber.Ctx) error {
	res, err := c.certificateService.List(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list certificates", res))
}

func (c *certificateController) Upload(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.NewValidation("multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	uploadedBy, _ := ctx.Locals("username").(string)

	req := dto.UploadCertificateFileRequest{
		Id:         id,
		Data:       data,
		FileName:   fileHeader.Filename,
		Size:       fileHeader.Size,
		UploadedBy: uploadedBy,
	}

	res, err := c.certificateService.UploadFile(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Certificate file uploaded", res))
}

func (c *certificateController) Download(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.certificateService.DownloadFile(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, res.FileName))
	return ctx.Send(res.Data)
}
