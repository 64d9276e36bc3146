package pricing

import (
	"os"
	"strconv"
)

// Rates is the deployment-overridable rate table, in IQD.
//
// Every figure is a whole number of dinars; the only non-integer knob is the
// rush multiplier, applied to the service line alone.
type Rates struct {
	FullServicePerPage     int64
	SelfTranslationPerPage int64
	AITranslationPerPage   int64
	PerWord                int64
	CertificationPerDoc    int64
	AdditionalCopy         int64
	Delivery               int64
	Insurance              map[InsuranceTier]int64
	RushMultiplier         float64
}

// DefaultRates returns the standard NCT price card.
func DefaultRates() Rates {
	return Rates{
		FullServicePerPage:     15000,
		SelfTranslationPerPage: 5000,
		AITranslationPerPage:   10000,
		PerWord:                66,
		CertificationPerDoc:    5000,
		AdditionalCopy:         2500,
		Delivery:               5000,
		Insurance: map[InsuranceTier]int64{
			Insurance31Days: 5000,
			Insurance45Days: 7500,
			Insurance90Days: 12500,
			Insurance1Year:  25000,
		},
		RushMultiplier: 1.5,
	}
}

// RatesFromEnv builds the rate table from environment overrides, falling back
// to the defaults for anything unset or unparsable.
//
// Supported env vars:
//   - PRICE_FULL_SERVICE_PER_PAGE, PRICE_SELF_TRANSLATION_PER_PAGE,
//     PRICE_AI_TRANSLATION_PER_PAGE, PRICE_PER_WORD,
//     PRICE_CERTIFICATION_PER_DOC, PRICE_ADDITIONAL_COPY, PRICE_DELIVERY
//   - PRICE_INSURANCE_31_DAYS, PRICE_INSURANCE_45_DAYS,
//     PRICE_INSURANCE_90_DAYS, PRICE_INSURANCE_1_YEAR
func RatesFromEnv() Rates {
	r := DefaultRates()
	r.FullServicePerPage = envInt64("PRICE_FULL_SERVICE_PER_PAGE", r.FullServicePerPage)
	r.SelfTranslationPerPage = envInt64("PRICE_SELF_TRANSLATION_PER_PAGE", r.SelfTranslationPerPage)
	r.AITranslationPerPage = envInt64("PRICE_AI_TRANSLATION_PER_PAGE", r.AITranslationPerPage)
	r.PerWord = envInt64("PRICE_PER_WORD", r.PerWord)
	r.CertificationPerDoc = envInt64("PRICE_CERTIFICATION_PER_DOC", r.CertificationPerDoc)
	r.AdditionalCopy = envInt64("PRICE_ADDITIONAL_COPY", r.AdditionalCopy)
	r.Delivery = envInt64("PRICE_DELIVERY", r.Delivery)
	r.Insurance[Insurance31Days] = envInt64("PRICE_INSURANCE_31_DAYS", r.Insurance[Insurance31Days])
	r.Insurance[Insurance45Days] = envInt64("PRICE_INSURANCE_45_DAYS", r.Insurance[Insurance45Days])
	r.Insurance[Insurance90Days] = envInt64("PRICE_INSURANCE_90_DAYS", r.Insurance[Insurance90Days])
	r.Insurance[Insurance1Year] = envInt64("PRICE_INSURANCE_1_YEAR", r.Insurance[Insurance1Year])
	return r
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
