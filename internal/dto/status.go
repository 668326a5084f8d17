package dto

import (
	"github.com/mamadou288/shop-api/internal/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// supportedLanguages is ordered by preference; the first entry is the matcher default.
var supportedLanguages = []language.Tag{
	language.French,
	language.English,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var statusLabels = map[string]map[entity.OrderStatus]string{
	"fr": {
		entity.OrderStatusPending:   "En attente",
		entity.OrderStatusConfirmed: "Confirmée",
		entity.OrderStatusShipped:   "Expédiée",
		entity.OrderStatusDelivered: "Livrée",
		entity.OrderStatusCancelled: "Annulée",
	},
	"en": {
		entity.OrderStatusPending:   "Pending",
		entity.OrderStatusConfirmed: "Confirmed",
		entity.OrderStatusShipped:   "Shipped",
		entity.OrderStatusDelivered: "Delivered",
		entity.OrderStatusCancelled: "Cancelled",
	},
}

// ParseLanguage returns the supported tag closest to s, or French.
func ParseLanguage(s string) language.Tag {
	return MatchLanguage(language.French, s)
}

// MatchLanguage returns the first supported language matched by prefs. Each
// pref is a tag ("en") or an Accept-Language header value.
func MatchLanguage(fallback language.Tag, prefs ...string) language.Tag {
	for _, p := range prefs {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := languageMatcher.Match(tags...)
		if conf != language.No {
			return supportedLanguages[idx]
		}
	}
	return fallback
}

// StatusLabel returns the display label of s. Statuses without a translation are title-cased.
func StatusLabel(s entity.OrderStatus, tag language.Tag) string {
	base, _ := tag.Base()
	if labels, ok := statusLabels[base.String()]; ok {
		if l, ok := labels[s]; ok {
			return l
		}
	}
	return cases.Title(tag).String(string(s))
}
