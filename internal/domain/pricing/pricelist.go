package pricing

// PriceList is the bilingual catalog shown to admins and on the public
// pricing page. It is derived from the live rate table so configuration
// overrides show up here too.

type ServiceListing struct {
	ID            ServiceType `json:"id"`
	Name          string      `json:"name"`
	NameAr        string      `json:"nameAr"`
	PricePerPage  int64       `json:"pricePerPage"`
	PricePerWord  int64       `json:"pricePerWord,omitempty"`
	Description   string      `json:"description"`
	DescriptionAr string      `json:"descriptionAr"`
}

type AddonListing struct {
	Name          string  `json:"name"`
	NameAr        string  `json:"nameAr"`
	Price         int64   `json:"price,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	UnitAr        string  `json:"unitAr,omitempty"`
	Multiplier    float64 `json:"multiplier,omitempty"`
	Description   string  `json:"description,omitempty"`
	DescriptionAr string  `json:"descriptionAr,omitempty"`
}

type InsuranceListing struct {
	ID     InsuranceTier `json:"id"`
	Name   string        `json:"name"`
	NameAr string        `json:"nameAr"`
	Price  int64         `json:"price"`
}

type DeliveryListing struct {
	ID     DeliveryMethod `json:"id"`
	Name   string         `json:"name"`
	NameAr string         `json:"nameAr"`
	Price  int64          `json:"price"`
}

type PriceList struct {
	Services        []ServiceListing        `json:"services"`
	Addons          map[string]AddonListing `json:"addons"`
	Insurance       []InsuranceListing      `json:"insurance"`
	DeliveryMethods []DeliveryListing       `json:"deliveryMethods"`
	Currency        string                  `json:"currency"`
	CurrencySymbol  string                  `json:"currencySymbol"`
}

func (e *Engine) PriceList() PriceList {
	r := e.rates
	return PriceList{
		Services: []ServiceListing{
			{
				ID:            FullService,
				Name:          "Full Service Translation",
				NameAr:        serviceNamesAr[FullService],
				PricePerPage:  r.FullServicePerPage,
				PricePerWord:  r.PerWord,
				Description:   "Professional translation with certification",
				DescriptionAr: "ترجمة احترافية مع المصادقة",
			},
			{
				ID:            SelfTranslation,
				Name:          "Self Translation Review",
				NameAr:        serviceNamesAr[SelfTranslation],
				PricePerPage:  r.SelfTranslationPerPage,
				Description:   "Review and certification of your translation",
				DescriptionAr: "مراجعة ومصادقة ترجمتك",
			},
			{
				ID:            AITranslation,
				Name:          "AI-Powered Translation",
				NameAr:        serviceNamesAr[AITranslation],
				PricePerPage:  r.AITranslationPerPage,
				Description:   "AI extraction and translation with review",
				DescriptionAr: "استخراج وترجمة بالذكاء الاصطناعي مع المراجعة",
			},
		},
		Addons: map[string]AddonListing{
			"certification": {
				Name:   "Official Certification",
				NameAr: "المصادقة الرسمية",
				Price:  r.CertificationPerDoc,
				Unit:   "document",
				UnitAr: "وثيقة",
			},
			"additionalCopy": {
				Name:   "Additional Copy",
				NameAr: "نسخة إضافية",
				Price:  r.AdditionalCopy,
				Unit:   "copy per page",
				UnitAr: "نسخة لكل صفحة",
			},
			"delivery": {
				Name:   "Delivery",
				NameAr: "توصيل",
				Price:  r.Delivery,
				Unit:   "flat rate",
				UnitAr: "سعر ثابت",
			},
			"rush": {
				Name:          "Rush Translation",
				NameAr:        "ترجمة عاجلة",
				Multiplier:    r.RushMultiplier,
				Description:   "50% surcharge",
				DescriptionAr: "زيادة 50%",
			},
		},
		Insurance: []InsuranceListing{
			{ID: Insurance31Days, Name: "31 Days Assurance", NameAr: insuranceNames[Insurance31Days].ar, Price: r.Insurance[Insurance31Days]},
			{ID: Insurance45Days, Name: "45 Days Assurance", NameAr: insuranceNames[Insurance45Days].ar, Price: r.Insurance[Insurance45Days]},
			{ID: Insurance90Days, Name: "90 Days Assurance", NameAr: insuranceNames[Insurance90Days].ar, Price: r.Insurance[Insurance90Days]},
			{ID: Insurance1Year, Name: "1 Year Assurance", NameAr: insuranceNames[Insurance1Year].ar, Price: r.Insurance[Insurance1Year]},
		},
		DeliveryMethods: []DeliveryListing{
			{ID: DeliveryDigital, Name: "Digital File", NameAr: "ملف رقمي", Price: 0},
			{ID: DeliveryPickup, Name: "Office Pickup", NameAr: "استلام من المكتب", Price: 0},
			{ID: DeliveryCourier, Name: "Delivery", NameAr: "توصيل", Price: r.Delivery},
		},
		Currency:       Currency,
		CurrencySymbol: "د.ع",
	}
}
