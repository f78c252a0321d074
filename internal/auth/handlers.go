package auth

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/MuzikosMokykla/MM-Backend/internal/email"
	"github.com/MuzikosMokykla/MM-Backend/internal/middleware"
	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionTTL   = 24 * time.Hour
	magicCodeTTL = 10 * time.Minute
)

// Demo credential table, checked only when the DEMO_LOGIN flag is set and the
// user store yields no match. Plaintext by design of the demo accounts.
type demoUser struct {
	ID       string
	Username string
	Password string
	Role     string
}

var demoUsers = []demoUser{
	{ID: "1", Username: "admin", Password: "admin123", Role: "admin"},
	{ID: "2", Username: "viewer", Password: "viewer123", Role: "viewer"},
}

type Handler struct {
	Users    UserStore
	Sessions SessionStore
	Codes    CodeStore
	Email    email.Service

	// DemoLogin enables the fixed demo credential fallback.
	DemoLogin bool
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Neteisinga užklausa")
		return
	}

	sessionUser, ok := h.authenticate(creds.Username, creds.Password)
	if !ok {
		// Generic message: never reveal which of the two fields was wrong.
		utils.RespondError(w, http.StatusUnauthorized, "Neteisingi prisijungimo duomenys")
		return
	}

	h.establishSession(w, sessionUser)
}

// authenticate resolves a username/password pair against the user store
// first, then the demo table when enabled. First match wins.
func (h *Handler) authenticate(username, password string) (utils.SessionUser, bool) {
	if username != "" && password != "" {
		user, err := h.Users.FindByUsername(username)
		if err == nil {
			if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) == nil {
				return utils.SessionUser{ID: user.UserID, Username: user.Username, Role: user.Role}, true
			}
			return utils.SessionUser{}, false
		}

		if h.DemoLogin {
			for _, du := range demoUsers {
				if du.Username == username && du.Password == password {
					return utils.SessionUser{ID: du.ID, Username: du.Username, Role: du.Role}, true
				}
			}
		}
	}
	return utils.SessionUser{}, false
}

// establishSession creates the session row, sets the cookie and writes the
// {"user": ...} response shared by both login variants.
func (h *Handler) establishSession(w http.ResponseWriter, user utils.SessionUser) {
	session := Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := h.Sessions.Create(session); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Serverio klaida")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.SessionID,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondJSON(w, http.StatusOK, map[string]utils.SessionUser{"user": user})
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Reikalingas prisijungimas")
		return
	}

	if err := h.Sessions.Delete(cookie.Value); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Atsijungimo klaida")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   middleware.SessionCookieName,
		Value:  "",
		MaxAge: -1,
		Path:   "/",
	})

	utils.RespondMessage(w, http.StatusOK, "Sėkmingai atsijungta")
}

func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetSessionUserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Neprisijungęs")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]utils.SessionUser{"user": user})
}

func (h *Handler) SendMagicCodeHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, "El. paštas privalomas")
		return
	}

	if h.Email == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "El. pašto paslauga nepasiekiama")
		return
	}

	code, err := generateCode()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Serverio klaida")
		return
	}

	mc := MagicCode{
		Email:     body.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(magicCodeTTL),
	}
	if err := h.Codes.Save(mc); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Serverio klaida")
		return
	}

	subject := "Prisijungimo kodas"
	text := fmt.Sprintf("Jūsų vienkartinis prisijungimo kodas: %s\nKodas galioja 10 minučių.", code)
	if err := h.Email.Send(body.Email, subject, text); err != nil {
		log.Printf("magic code email to %s failed: %v", body.Email, err)
		utils.RespondError(w, http.StatusServiceUnavailable, "Nepavyko išsiųsti kodo")
		return
	}

	utils.RespondMessage(w, http.StatusOK, "Kodas išsiųstas")
}

func (h *Handler) VerifyMagicCodeHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Code == "" {
		utils.RespondError(w, http.StatusBadRequest, "El. paštas ir kodas privalomi")
		return
	}

	mc, err := h.Codes.Find(body.Email)
	if err != nil || mc.Code != body.Code || mc.ExpiresAt.Before(time.Now()) {
		utils.RespondError(w, http.StatusUnauthorized, "Neteisingas arba pasibaigęs kodas")
		return
	}

	// One-time use.
	if err := h.Codes.Delete(body.Email); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Serverio klaida")
		return
	}

	h.establishSession(w, h.resolveByEmail(body.Email))
}

// resolveByEmail maps a verified email to an identity. Unknown addresses (or
// a failing lookup) get a fresh viewer identity.
func (h *Handler) resolveByEmail(address string) utils.SessionUser {
	if user, err := h.Users.FindByEmail(address); err == nil {
		return utils.SessionUser{ID: user.UserID, Username: user.Username, Role: user.Role}
	}
	return utils.SessionUser{ID: uuid.NewString(), Username: address, Role: "viewer"}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}
