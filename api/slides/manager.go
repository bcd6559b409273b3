package slides

import (
	"lumina_server/handling"
	"lumina_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SlideRoutesManager struct {
	logger       *gecho.Logger
	slideService *services.SlideService
}

func NewSlideRoutesManager(logger *gecho.Logger, slideService *services.SlideService) *SlideRoutesManager {
	return &SlideRoutesManager{
		logger:       logger,
		slideService: slideService,
	}
}

func (s *SlideRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/slides", s.FetchAllSlides)
}

// FetchAllSlides handles GET /slides, ordered by position.
func (s *SlideRoutesManager) FetchAllSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := s.slideService.GetSlides(r.Context())
	if err != nil {
		handling.RespondServiceError(w, s.logger, err, "error.slides.failedToFetch")
		return
	}

	gecho.Success(w,
		gecho.WithData(slides),
		gecho.Send(),
	)
}
