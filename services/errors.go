package services

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses in
// the handlers package. Messages are surfaced verbatim to the frontend,
// hence the French.
var (
	// Validation
	ErrInvalidTelegramData = errors.New("données invalides")
	ErrMissingFields       = errors.New("données manquantes")
	ErrConsentRequired     = errors.New("vous devez accepter les CGU et la politique de confidentialité")
	ErrDisplayNameTooShort = errors.New("le pseudo doit contenir au moins 3 caractères")

	// Conflicts
	ErrDisplayNameTaken  = errors.New("ce pseudo est déjà pris")
	ErrTelegramIDTaken   = errors.New("ce compte Telegram est déjà inscrit")
	ErrAlreadyRegistered = errors.New("vous êtes déjà inscrit à cette édition")

	// Not found
	ErrUserNotFound = errors.New("utilisateur introuvable")
)
