package entities

// The portal UI speaks short slugs ("id-documents", "pickup", "31days"); the
// document store keeps human-facing option names ("ID-sized documents",
// "Pickup", "31 days assurance"). The tables below are the single place the
// two vocabularies meet, so they cannot drift silently.

// DocumentTypeToStore maps portal document-type slugs to the store's
// controlled vocabulary. Unknown slugs pass through unchanged.
var DocumentTypeToStore = map[string]string{
	"id-documents":      "ID-sized documents",
	"certificates":      "Certificates",
	"official-letters":  "Official letters statements contracts",
	"power-of-attorney": "General PoAs",
	"court-documents":   "Court rulings and similar documents",
	"medical-reports":   "Medical reports and long-format technical reports",
	"company-documents": "Company Documents",
}

// DeliveryMethodToStore maps delivery slugs to store option names.
var DeliveryMethodToStore = map[string]string{
	"digital":  "Digital file",
	"pickup":   "Pickup",
	"delivery": "Delivery",
}

// InsuranceTierToStore maps insurance tier slugs to store option names.
var InsuranceTierToStore = map[string]string{
	"31days": "31 days assurance",
	"45days": "45 days assurance",
	"90days": "90 days assurance",
	"1year":  "1 year assurance",
}

// DefaultLanguagePair is used when an order arrives without a language pair.
const DefaultLanguagePair = "En ⇆ Ar"

// MapDocumentTypes converts a list of portal slugs to store names, keeping
// unknown values as-is (the store accepts free options).
func MapDocumentTypes(slugs []string) []string {
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if mapped, ok := DocumentTypeToStore[s]; ok {
			out = append(out, mapped)
			continue
		}
		out = append(out, s)
	}
	return out
}

// MapDeliveryMethod converts a delivery slug to the store name, falling back
// to Pickup for unknown values.
func MapDeliveryMethod(slug string) string {
	if mapped, ok := DeliveryMethodToStore[slug]; ok {
		return mapped
	}
	return DeliveryMethodToStore["pickup"]
}

// MapInsuranceTier converts an insurance tier slug to the store name, keeping
// unknown values as-is.
func MapInsuranceTier(slug string) string {
	if mapped, ok := InsuranceTierToStore[slug]; ok {
		return mapped
	}
	return slug
}

// UnmapInsuranceTier converts a store option name back to the portal slug.
// Needed when recomputing a quotation from a stored order.
func UnmapInsuranceTier(store string) string {
	for slug, name := range InsuranceTierToStore {
		if name == store {
			return slug
		}
	}
	return store
}

// UnmapDeliveryMethod converts a store option name back to the portal slug,
// defaulting to pickup.
func UnmapDeliveryMethod(store string) string {
	for slug, name := range DeliveryMethodToStore {
		if name == store {
			return slug
		}
	}
	return "pickup"
}
