package handler

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andriansah/cv-audit/internal/middleware"
	"github.com/andriansah/cv-audit/internal/model"
	"github.com/andriansah/cv-audit/internal/report"
	"github.com/andriansah/cv-audit/internal/repository"
	"github.com/andriansah/cv-audit/internal/usecase"
	"github.com/andriansah/cv-audit/internal/util"
)

const sessionHeader = "X-Session-ID"

type AnalyzeHandler struct {
	uc       *usecase.AnalysisUsecase
	sessions *repository.SessionRepository
}

func NewAnalyzeHandler(uc *usecase.AnalysisUsecase, sessions *repository.SessionRepository) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc, sessions: sessions}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/sessions", h.CreateSession)
	app.Post("/analyze", middleware.RateLimiter(1, 4*time.Second), h.Analyze)
	app.Post("/chat", h.Chat)
	app.Get("/report", h.Report)
	app.Get("/export", h.Export)
}

func (h *AnalyzeHandler) CreateSession(c *fiber.Ctx) error {
	session := h.sessions.Create()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Session created",
		Data:    fiber.Map{"id": session.ID},
	})
}

func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	// A missing or unknown session id starts a fresh session so the
	// first analyze call needs no prior handshake.
	session := h.findSession(c)
	if session == nil {
		session = h.sessions.Create()
	}

	mode, err := model.ParseAnalysisMode(c.FormValue("mode"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "unknown analysis mode",
		}, err)
	}

	document, err := h.readUpload(c, "cv")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := h.uc.Run(c.Context(), session, mode, document, c.FormValue("job_description"))
	switch {
	case errors.Is(err, model.ErrDocumentRequired), errors.Is(err, model.ErrJobDescriptionRequired):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, model.ErrMalformedResponse):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "analysis failed, please try again",
		}, err)
	case err != nil:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to run analysis",
		}, err)
	}

	if mode == model.ModeInterview {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Interview started",
			Data:    fiber.Map{"session_id": session.ID, "chat": session.Chat},
		})
	}

	tree, err := report.Render(result)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to render report",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Analysis complete",
		Data:    fiber.Map{"session_id": session.ID, "report": tree},
	})
}

func (h *AnalyzeHandler) Chat(c *fiber.Ctx) error {
	session := h.findSession(c)
	if session == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: model.ErrSessionNotFound.Error(),
		})
	}

	var body struct {
		Message        string `json:"message"`
		JobDescription string `json:"job_description"`
	}
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	chat := h.uc.Chat(c.Context(), session, body.Message, body.JobDescription)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Turn recorded",
		Data:    fiber.Map{"chat": chat},
	})
}

func (h *AnalyzeHandler) Report(c *fiber.Ctx) error {
	session := h.findSession(c)
	if session == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: model.ErrSessionNotFound.Error(),
		})
	}

	tree, err := report.Render(session.Current())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: model.ErrNoResult.Error(),
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get report",
		Data:    fiber.Map{"report": tree},
	})
}

func (h *AnalyzeHandler) Export(c *fiber.Ctx) error {
	session := h.findSession(c)
	if session == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: model.ErrSessionNotFound.Error(),
		})
	}

	result := session.Current()
	if result == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: model.ErrNoResult.Error(),
		})
	}

	document, err := report.Export(result)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: model.ErrExportFailed.Error(),
		}, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cv_audit_report.pdf"`)
	return c.Send(document)
}

func (h *AnalyzeHandler) findSession(c *fiber.Ctx) *model.Session {
	id, err := uuid.Parse(c.Get(sessionHeader))
	if err != nil {
		return nil
	}
	session, err := h.sessions.Find(id)
	if err != nil {
		return nil
	}
	return session
}

// readUpload loads the uploaded PDF into memory. A missing file is not an
// error here; the usecase reports it as a validation error.
func (h *AnalyzeHandler) readUpload(c *fiber.Ctx, fieldName string) ([]byte, error) {
	fileHeader, err := c.FormFile(fieldName)
	if err != nil {
		return nil, nil
	}

	if fileHeader.Size > 5*1024*1024 {
		return nil, fmt.Errorf("%s file size is too large (max 5MB)", fieldName)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot read %s file: %w", fieldName, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s file: %w", fieldName, err)
	}
	return data, nil
}
