// file: internals/features/media/controller/media_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "centerku_backend/internals/helpers"
	"centerku_backend/internals/helpers/oss"
)

// MediaController: upload & hapus file media submission.
// Service OSS dibuat sekali saat init; kalau env belum lengkap,
// endpoint menjawab 503 alih-alih panic saat start.
type MediaController struct {
	svc    *oss.CenterMediaService
	svcErr error
}

func NewMediaController() *MediaController {
	svc, err := oss.NewCenterMediaServiceFromEnv()
	return &MediaController{svc: svc, svcErr: err}
}

/* ==============================
   ✅ UPLOAD — POST /api/u/media/upload
   multipart: mediaFile (file), centerCode (form value)
============================== */

func (ctrl *MediaController) Upload(c *fiber.Ctx) error {
	if ctrl.svcErr != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan upload belum dikonfigurasi")
	}

	centerCode := strings.TrimSpace(c.FormValue("centerCode"))
	if centerCode == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "centerCode wajib diisi")
	}

	fh, err := c.FormFile("mediaFile")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File media wajib diunggah (field: mediaFile)")
	}
	if fh.Size > oss.MaxMediaUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran file melebihi batas 50MB")
	}

	res, err := ctrl.svc.Upload(c.Context(), centerCode, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengunggah file: "+err.Error())
	}

	return helper.JsonCreated(c, "File berhasil diunggah", res)
}

/* ==============================
   ✅ DELETE — DELETE /api/u/media
   body: { "file_url": "..." }
============================== */

type deleteMediaRequest struct {
	FileURL string `json:"file_url"`
}

func (ctrl *MediaController) Delete(c *fiber.Ctx) error {
	if ctrl.svcErr != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Layanan upload belum dikonfigurasi")
	}

	var req deleteMediaRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.FileURL) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "file_url wajib diisi")
	}

	if err := ctrl.svc.Delete(c.Context(), req.FileURL); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghapus file: "+err.Error())
	}
	return helper.JsonDeleted(c, "File berhasil dihapus", fiber.Map{"file_url": req.FileURL})
}
