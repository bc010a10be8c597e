// Package i18n translates the service's error messages into English, Portuguese and Dutch.
package i18n

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale picks the supported locale the client prefers in Accept-Language.
// Region tags collapse to their language ("nl-BE" is "nl"); entries are weighed by q,
// earlier entries win ties, and q=0 excludes a language. Without a match it returns
// DefaultLocale.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	supported := GetTranslator().messages
	best, bestQ := DefaultLocale, 0.0
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
		if _, ok := supported[lang]; !ok {
			continue
		}
		q := 1.0
		if v, found := strings.CutPrefix(strings.TrimSpace(params), "q="); found {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		if q > bestQ {
			best, bestQ = lang, q
		}
	}
	return best
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.unauthorized":            "Unauthorized",
			"error.identity_required":       "The X-User-ID header is required",
			"error.api_key_required":        "API key is required",
			"error.invalid_api_key":         "Invalid API key",
			"error.forbidden":               "Forbidden",
			"error.not_found":               "Not found",
			"error.group_not_found":         "Item not found in your inventory",
			"error.location_not_found":      "Storage location not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "Conflict",
			"error.concurrent_update":       "The inventory changed while saving, please review and try again",
			"error.incompatible_unit":       "These units cannot be converted into each other",
			"error.validation":              "Some fields are invalid",
			"error.invalid_token":           "Invalid or expired token",
			"error.token_required":          "Authentication token is required",
			"error.timeout":                 "Request timeout",
			"error.idempotency_key_reused":  "This Idempotency-Key was already used for a different request",
			"error.idempotency_in_progress": "The same request is still being processed",
			"error.household_not_allowed":   "This API key may not act for that household",

			"error.request.unknown_operation":      "Unknown operation",
			"error.request.negative_amount":        "Amounts must not be negative",
			"error.request.nothing_requested":      "Nothing was selected",
			"error.request.exceeds_full_packages":  "More full packages were selected than are available",
			"error.request.exceeds_partial_amount": "More was selected than the opened packages hold",
			"error.request.exceeds_available":      "More was requested than is in stock",
			"error.request.missing_destination":    "A storage location is required",
			"error.request.unknown_bucket":         "No packages of that size",
			"error.request.invalid_servings":       "Invalid number of servings",
			"error.request.invalid_item":           "Invalid item",
		},
		"pt": {
			"error.invalid_request":         "Requisição inválida",
			"error.invalid_request_body":    "Corpo da requisição inválido",
			"error.internal_error":          "Ocorreu um erro inesperado",
			"error.unauthorized":            "Não autorizado",
			"error.identity_required":       "O cabeçalho X-User-ID é obrigatório",
			"error.api_key_required":        "Chave de API é obrigatória",
			"error.invalid_api_key":         "Chave de API inválida",
			"error.forbidden":               "Proibido",
			"error.not_found":               "Não encontrado",
			"error.group_not_found":         "Item não encontrado no seu estoque",
			"error.location_not_found":      "Local de armazenamento não encontrado",
			"error.rate_limit_exceeded":     "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                "Conflito",
			"error.concurrent_update":       "O estoque mudou durante a gravação, revise e tente novamente",
			"error.incompatible_unit":       "Essas unidades não podem ser convertidas entre si",
			"error.validation":              "Alguns campos são inválidos",
			"error.invalid_token":           "Token inválido ou expirado",
			"error.token_required":          "Token de autenticação é obrigatório",
			"error.timeout":                 "Tempo limite da requisição excedido",
			"error.idempotency_key_reused":  "Esta Idempotency-Key já foi usada em outra requisição",
			"error.idempotency_in_progress": "A mesma requisição ainda está em processamento",
			"error.household_not_allowed":   "Esta chave de API não pode agir por essa casa",

			"error.request.unknown_operation":      "Operação desconhecida",
			"error.request.negative_amount":        "Quantidades não podem ser negativas",
			"error.request.nothing_requested":      "Nada foi selecionado",
			"error.request.exceeds_full_packages":  "Foram selecionados mais pacotes fechados do que existem",
			"error.request.exceeds_partial_amount": "Foi selecionado mais do que os pacotes abertos contêm",
			"error.request.exceeds_available":      "Foi pedido mais do que há em estoque",
			"error.request.missing_destination":    "É necessário um local de armazenamento",
			"error.request.unknown_bucket":         "Não há pacotes desse tamanho",
			"error.request.invalid_servings":       "Número de porções inválido",
			"error.request.invalid_item":           "Item inválido",
		},
		"nl": {
			"error.invalid_request":         "Ongeldig verzoek",
			"error.invalid_request_body":    "Ongeldige aanvraag body",
			"error.internal_error":          "Er is een onverwachte fout opgetreden",
			"error.unauthorized":            "Niet geautoriseerd",
			"error.identity_required":       "De X-User-ID header is vereist",
			"error.api_key_required":        "API-sleutel is vereist",
			"error.invalid_api_key":         "Ongeldige API-sleutel",
			"error.forbidden":               "Verboden",
			"error.not_found":               "Niet gevonden",
			"error.group_not_found":         "Artikel niet gevonden in je voorraad",
			"error.location_not_found":      "Opslaglocatie niet gevonden",
			"error.rate_limit_exceeded":     "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                "Conflict",
			"error.concurrent_update":       "De voorraad is tijdens het opslaan gewijzigd, controleer en probeer opnieuw",
			"error.incompatible_unit":       "Deze eenheden kunnen niet in elkaar worden omgerekend",
			"error.validation":              "Sommige velden zijn ongeldig",
			"error.invalid_token":           "Ongeldig of verlopen token",
			"error.token_required":          "Authenticatietoken is vereist",
			"error.timeout":                 "Time-out van het verzoek",
			"error.idempotency_key_reused":  "Deze Idempotency-Key is al gebruikt voor een ander verzoek",
			"error.idempotency_in_progress": "Hetzelfde verzoek wordt nog verwerkt",
			"error.household_not_allowed":   "Deze API-sleutel mag niet namens dat huishouden handelen",

			"error.request.unknown_operation":      "Onbekende bewerking",
			"error.request.negative_amount":        "Hoeveelheden mogen niet negatief zijn",
			"error.request.nothing_requested":      "Er is niets geselecteerd",
			"error.request.exceeds_full_packages":  "Er zijn meer volle verpakkingen geselecteerd dan er zijn",
			"error.request.exceeds_partial_amount": "Er is meer geselecteerd dan de geopende verpakkingen bevatten",
			"error.request.exceeds_available":      "Er is meer gevraagd dan er op voorraad is",
			"error.request.missing_destination":    "Een opslaglocatie is vereist",
			"error.request.unknown_bucket":         "Geen verpakkingen van die grootte",
			"error.request.invalid_servings":       "Ongeldig aantal porties",
			"error.request.invalid_item":           "Ongeldig artikel",
		},
	}
}
