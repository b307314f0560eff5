package handler

import (
	"errors"

	"job-radar/internal/delivery/http/dto"
	"job-radar/internal/delivery/http/middleware"
	"job-radar/internal/pkg/response"
	"job-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DuplicateHandler struct {
	uc usecase.DuplicateUsecase
}

func NewDuplicateHandler(uc usecase.DuplicateUsecase) *DuplicateHandler {
	return &DuplicateHandler{uc: uc}
}

func (h *DuplicateHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/duplicates")
	grp.Get("/", h.List)
	grp.Post("/detect", h.Detect)
	grp.Post("/merge", h.Merge)
	grp.Delete("/merge", h.Unmerge)
}

func (h *DuplicateHandler) Detect(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.DetectRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	summary, err := h.uc.DetectDuplicates(c.Context(), userID, req.Threshold)
	if err != nil {
		return mapDuplicateError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DetectionSummaryResponse{
		JobsScanned: summary.JobsScanned,
		Partitions:  summary.Partitions,
		PairsFound:  summary.PairsFound,
	})
}

func (h *DuplicateHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	pairs, err := h.uc.ListDuplicates(c.Context(), userID)
	if err != nil {
		return mapDuplicateError(err)
	}

	out := make([]dto.DuplicatePairResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, dto.NewDuplicatePairResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *DuplicateHandler) Merge(c fiber.Ctx) error {
	userID, canonicalID, duplicateID, err := h.mergeParams(c)
	if err != nil {
		return err
	}

	pair, err := h.uc.MergeManually(c.Context(), canonicalID, duplicateID, userID)
	if err != nil {
		return mapDuplicateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDuplicatePairResponse(pair))
}

func (h *DuplicateHandler) Unmerge(c fiber.Ctx) error {
	userID, canonicalID, duplicateID, err := h.mergeParams(c)
	if err != nil {
		return err
	}

	if err := h.uc.Unmerge(c.Context(), canonicalID, duplicateID, userID); err != nil {
		return mapDuplicateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *DuplicateHandler) mergeParams(c fiber.Ctx) (userID, canonicalID, duplicateID uuid.UUID, err error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.MergeRequest
	if err := c.Bind().Body(&req); err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	canonicalID, perr := uuid.Parse(req.CanonicalJobID)
	if perr != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid canonical_job_id", nil, perr)
	}
	duplicateID, perr = uuid.Parse(req.DuplicateJobID)
	if perr != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid duplicate_job_id", nil, perr)
	}

	return userID, canonicalID, duplicateID, nil
}

func mapDuplicateError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrSamePair):
		return middleware.NewAppError(fiber.StatusBadRequest, "Canonical and duplicate must differ", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found or access denied", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
