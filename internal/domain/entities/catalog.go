package entities

// FieldLabel is one extractable field of a document type, with the bilingual
// labels the portal UI renders.
type FieldLabel struct {
	Key string `json:"key"`
	Ar  string `json:"ar"`
	En  string `json:"en"`
}

// DocumentTypeInfo describes one document-type slug for the portal UI.
type DocumentTypeInfo struct {
	Name   string       `json:"name"`
	NameAr string       `json:"nameAr"`
	Icon   string       `json:"icon"`
	Fields []FieldLabel `json:"fields"`
}

// DocumentTypeCatalog lists the supported document types keyed by the same
// slugs DocumentTypeToStore maps, with the fields the AI extraction targets.
var DocumentTypeCatalog = map[string]DocumentTypeInfo{
	"id-documents": {
		Name:   "ID Documents",
		NameAr: "الهوية والوثائق الشخصية",
		Icon:   "🪪",
		Fields: []FieldLabel{
			{Key: "fullName", Ar: "الاسم الكامل", En: "Full Name"},
			{Key: "idNumber", Ar: "رقم الهوية", En: "ID Number"},
			{Key: "dateOfBirth", Ar: "تاريخ الولادة", En: "Date of Birth"},
			{Key: "gender", Ar: "الجنس", En: "Gender"},
			{Key: "address", Ar: "العنوان", En: "Address"},
			{Key: "issueDate", Ar: "تاريخ الإصدار", En: "Issue Date"},
			{Key: "expiryDate", Ar: "تاريخ الانتهاء", En: "Expiry Date"},
		},
	},
	"certificates": {
		Name:   "Certificates",
		NameAr: "الشهادات",
		Icon:   "📜",
		Fields: []FieldLabel{
			{Key: "certificateType", Ar: "نوع الشهادة", En: "Certificate Type"},
			{Key: "holderName", Ar: "اسم الحامل", En: "Holder Name"},
			{Key: "institution", Ar: "المؤسسة", En: "Institution"},
			{Key: "dateIssued", Ar: "تاريخ الإصدار", En: "Date Issued"},
			{Key: "grade", Ar: "التقدير", En: "Grade"},
			{Key: "certificateNumber", Ar: "رقم الشهادة", En: "Certificate Number"},
		},
	},
	"official-letters": {
		Name:   "Official Letters & Contracts",
		NameAr: "الرسائل والعقود الرسمية",
		Icon:   "📄",
		Fields: []FieldLabel{
			{Key: "title", Ar: "العنوان", En: "Title"},
			{Key: "date", Ar: "التاريخ", En: "Date"},
			{Key: "sender", Ar: "المرسل", En: "Sender"},
			{Key: "recipient", Ar: "المستلم", En: "Recipient"},
			{Key: "content", Ar: "المحتوى", En: "Content"},
			{Key: "signature", Ar: "التوقيع", En: "Signature"},
		},
	},
	"power-of-attorney": {
		Name:   "Power of Attorney",
		NameAr: "الوكالات العامة",
		Icon:   "⚖️",
		Fields: []FieldLabel{
			{Key: "principal", Ar: "الموكل", En: "Principal"},
			{Key: "agent", Ar: "الوكيل", En: "Agent"},
			{Key: "poaType", Ar: "نوع الوكالة", En: "Type"},
			{Key: "powers", Ar: "الصلاحيات", En: "Powers"},
			{Key: "date", Ar: "التاريخ", En: "Date"},
			{Key: "notary", Ar: "الكاتب العدل", En: "Notary"},
		},
	},
	"court-documents": {
		Name:   "Court Documents",
		NameAr: "أحكام المحاكم",
		Icon:   "🏛️",
		Fields: []FieldLabel{
			{Key: "caseNumber", Ar: "رقم القضية", En: "Case Number"},
			{Key: "courtName", Ar: "اسم المحكمة", En: "Court Name"},
			{Key: "parties", Ar: "الأطراف", En: "Parties"},
			{Key: "ruling", Ar: "الحكم", En: "Ruling"},
			{Key: "date", Ar: "التاريخ", En: "Date"},
			{Key: "judge", Ar: "القاضي", En: "Judge"},
		},
	},
	"medical-reports": {
		Name:   "Medical Reports",
		NameAr: "التقارير الطبية",
		Icon:   "🏥",
		Fields: []FieldLabel{
			{Key: "patientName", Ar: "اسم المريض", En: "Patient Name"},
			{Key: "date", Ar: "التاريخ", En: "Date"},
			{Key: "diagnosis", Ar: "التشخيص", En: "Diagnosis"},
			{Key: "treatment", Ar: "العلاج", En: "Treatment"},
			{Key: "doctor", Ar: "الطبيب", En: "Doctor"},
			{Key: "hospital", Ar: "المستشفى", En: "Hospital"},
		},
	},
	"company-documents": {
		Name:   "Company Documents",
		NameAr: "وثائق الشركات",
		Icon:   "🏢",
		Fields: []FieldLabel{
			{Key: "companyName", Ar: "اسم الشركة", En: "Company Name"},
			{Key: "registrationNumber", Ar: "رقم التسجيل", En: "Registration Number"},
			{Key: "documentType", Ar: "نوع الوثيقة", En: "Document Type"},
			{Key: "date", Ar: "التاريخ", En: "Date"},
			{Key: "content", Ar: "المحتوى", En: "Content"},
		},
	},
}

// Language is one supported language for the portal UI.
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr"`
	Flag   string `json:"flag"`
}

// Languages lists the supported languages in display order.
var Languages = []Language{
	{Code: "ar", Name: "Arabic", NameAr: "العربية", Flag: "🇮🇶"},
	{Code: "en", Name: "English", NameAr: "الإنجليزية", Flag: "🇬🇧"},
	{Code: "kr", Name: "Kurdish", NameAr: "الكردية", Flag: "🏳️"},
	{Code: "fr", Name: "French", NameAr: "الفرنسية", Flag: "🇫🇷"},
	{Code: "de", Name: "German", NameAr: "الألمانية", Flag: "🇩🇪"},
	{Code: "es", Name: "Spanish", NameAr: "الإسبانية", Flag: "🇪🇸"},
	{Code: "tr", Name: "Turkish", NameAr: "التركية", Flag: "🇹🇷"},
	{Code: "ru", Name: "Russian", NameAr: "الروسية", Flag: "🇷🇺"},
	{Code: "fa", Name: "Persian", NameAr: "الفارسية", Flag: "🇮🇷"},
	{Code: "zh", Name: "Chinese", NameAr: "الصينية", Flag: "🇨🇳"},
	{Code: "it", Name: "Italian", NameAr: "الإيطالية", Flag: "🇮🇹"},
	{Code: "nl", Name: "Dutch", NameAr: "الهولندية", Flag: "🇳🇱"},
	{Code: "pt", Name: "Portuguese", NameAr: "البرتغالية", Flag: "🇵🇹"},
	{Code: "uk", Name: "Ukrainian", NameAr: "الأوكرانية", Flag: "🇺🇦"},
}

// LanguagePairs lists the translation pairs the agency offers. The first
// entry is DefaultLanguagePair.
var LanguagePairs = []string{
	"En ⇆ Ar", "Kr ⇆ Ar", "Kr ⇆ En", "Fr ⇆ Ar", "De ⇆ Ar",
	"Es ⇆ Ar", "Tr ⇆ Ar", "Ru ⇆ Ar", "Ru ⇆ En", "Fa ⇆ Ar",
	"Zh ⇆ Ar", "It ⇆ Ar", "NL ⇆ Ar", "Pt ⇆ Ar", "Uk ⇆ Ar",
}
