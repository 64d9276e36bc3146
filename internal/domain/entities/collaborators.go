package entities

// Value objects exchanged with the drive and AI collaborators. The portal
// never owns the underlying files or model output; these are plain copies
// returned to callers.

// DriveFolder is a folder reference in the drive collaborator.
type DriveFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CustomerFolders is the per-customer folder structure created alongside an
// order: Root > Customer Name > Order > {Uploads, Translated}.
type CustomerFolders struct {
	Customer   DriveFolder `json:"customer"`
	Order      DriveFolder `json:"order"`
	Uploads    DriveFolder `json:"uploads"`
	Translated DriveFolder `json:"translated"`
}

// DriveFile is a file reference in the drive collaborator.
type DriveFile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MimeType    string `json:"mime_type,omitempty"`
	ViewURL     string `json:"view_url"`
	DownloadURL string `json:"download_url,omitempty"`
	DirectURL   string `json:"direct_url,omitempty"`
}

// Extraction is the AI collaborator's OCR result. Fields holds the
// document-type template values when a hint was supplied.
type Extraction struct {
	RawText    string            `json:"raw_text"`
	Fields     map[string]string `json:"fields,omitempty"`
	Language   string            `json:"language,omitempty"`
	Confidence float64           `json:"confidence,omitempty"`
}
