package admin

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateSlide handles POST /admin/slides. A slide without an explicit position
// is appended at the end of the carousel.
func (a *AdminRoutesManager) CreateSlide(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.SlideRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.slides.invalidPayload")
		return
	}

	slide, err := a.slideService.CreateSlide(r.Context(), req)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.slides.failedToCreate")
		return
	}

	gecho.Success(w,
		gecho.WithData(slide),
		gecho.Send(),
	)
}

// UpdateSlide handles PUT /admin/slides/{id}.
func (a *AdminRoutesManager) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.SlideRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.slides.invalidPayload")
		return
	}

	slide, err := a.slideService.UpdateSlide(r.Context(), id, req)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.slides.failedToUpdate")
		return
	}

	gecho.Success(w,
		gecho.WithData(slide),
		gecho.Send(),
	)
}

// DeleteSlide handles DELETE /admin/slides/{id}.
func (a *AdminRoutesManager) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := a.slideService.DeleteSlide(r.Context(), id); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.slides.failedToDelete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("slides.deleted"),
		gecho.Send(),
	)
}

// ReorderSlides handles POST /admin/slides/reorder, swapping the positions of
// two slides.
func (a *AdminRoutesManager) ReorderSlides(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.SlideReorderRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.slides.invalidPayload")
		return
	}

	if err := a.slideService.ReorderSlides(r.Context(), req.A, req.B); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.slides.failedToReorder")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("slides.reordered"),
		gecho.Send(),
	)
}
