package instruments

import (
	"math/rand"
	"net/http"
	"sort"

	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// numChoices is the number of answer buttons in a game round.
const numChoices = 4

type Handler struct {
	Store Store
}

var lithuanian = collate.New(language.Lithuanian)

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.Store.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant instrumentus")
		return
	}

	sort.Slice(instruments, func(i, j int) bool {
		return lithuanian.CompareString(instruments[i].Name, instruments[j].Name) < 0
	})
	utils.RespondJSON(w, http.StatusOK, instruments)
}

type RoundPrompt struct {
	ID        string `json:"id"`
	SoundFile string `json:"sound_file"`
}

type RoundChoice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Round struct {
	Prompt  RoundPrompt   `json:"prompt"`
	Choices []RoundChoice `json:"choices"`
}

// RoundHandler deals a guessing-game round: one instrument's sound as the
// prompt, four shuffled name choices including the answer.
func (h *Handler) RoundHandler(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.Store.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant instrumentus")
		return
	}

	playable := instruments[:0:0]
	for _, inst := range instruments {
		if inst.SoundFile != "" {
			playable = append(playable, inst)
		}
	}
	if len(playable) < 2 {
		utils.RespondError(w, http.StatusInternalServerError, "Per mažai instrumentų žaidimui")
		return
	}

	correct := playable[rand.Intn(len(playable))]

	others := playable[:0:0]
	for _, inst := range playable {
		if inst.ID != correct.ID {
			others = append(others, inst)
		}
	}
	rand.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	pool := append([]Instrument{correct}, others[:min(numChoices-1, len(others))]...)
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	round := Round{
		Prompt:  RoundPrompt{ID: correct.ID, SoundFile: correct.SoundFile},
		Choices: make([]RoundChoice, 0, len(pool)),
	}
	for _, inst := range pool {
		round.Choices = append(round.Choices, RoundChoice{ID: inst.ID, Name: inst.Name})
	}
	utils.RespondJSON(w, http.StatusOK, round)
}
