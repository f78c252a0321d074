package lookup

import (
	"log"
	"net/http"
	"strings"

	"github.com/MuzikosMokykla/MM-Backend/internal/instruments"
	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

const (
	defaultArtistLimit = 5
	defaultVideoLimit  = 3
)

type InstrumentResolver interface {
	FindByName(name string) (instruments.Instrument, error)
}

// Handler serves read-only widget lookups. External failures degrade to an
// empty result set so the landing page never breaks.
type Handler struct {
	Instruments InstrumentResolver
	MusicBrainz *MusicBrainzClient
	YouTube     *YouTubeClient
}

func (h *Handler) ArtistsHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "instrument")

	tag := strings.ToLower(name)
	if inst, err := h.Instruments.FindByName(name); err == nil {
		tag = inst.Tag
	}

	artists, err := h.MusicBrainz.SearchArtistsByTag(r.Context(), tag, defaultArtistLimit)
	if err != nil {
		log.Printf("musicbrainz lookup %q: %v", tag, err)
		utils.RespondJSON(w, http.StatusOK, []Artist{})
		return
	}
	utils.RespondJSON(w, http.StatusOK, artists)
}

func (h *Handler) VideosHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "instrument")

	if !h.YouTube.Enabled() {
		utils.RespondJSON(w, http.StatusOK, []Video{})
		return
	}

	query := strings.ToLower(name) + " tutorial"
	if inst, err := h.Instruments.FindByName(name); err == nil {
		query = inst.Query
	}

	videos, err := h.YouTube.SearchVideos(r.Context(), query, defaultVideoLimit)
	if err != nil {
		log.Printf("youtube lookup %q: %v", query, err)
		utils.RespondJSON(w, http.StatusOK, []Video{})
		return
	}
	utils.RespondJSON(w, http.StatusOK, videos)
}
