package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"nct_portal/internal/config"
	"nct_portal/internal/domain/entities"
	"nct_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrMissingDriveAccessToken = errors.New("missing DRIVE_ACCESS_TOKEN")

const folderMimeType = "application/vnd.google-apps.folder"

// Client talks to the Google Drive v3 REST API. With Mock enabled it hands
// out synthetic ids so the rest of the service runs without credentials.
type Client struct {
	http     *http.Client
	baseURL  string
	uplURL   string
	token    string
	rootID   string
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IDriveService = (*Client)(nil)

func NewClient(cfg config.Drive, logger *zap.Logger) (*Client, error) {
	c := &Client{
		http:     &http.Client{Timeout: 30 * time.Second},
		baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		uplURL:   cfg.UploadURL,
		token:    cfg.AccessToken,
		rootID:   cfg.RootFolderID,
		mockMode: cfg.Mock,
		logger:   logger.With(zap.String("collaborator", "drive")),
	}
	if c.mockMode {
		c.logger.Info("mock mode enabled")
		return c, nil
	}
	if c.token == "" {
		return nil, ErrMissingDriveAccessToken
	}
	return c, nil
}

type fileResource struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MimeType       string `json:"mimeType"`
	WebViewLink    string `json:"webViewLink"`
	WebContentLink string `json:"webContentLink"`
}

type fileList struct {
	Files []fileResource `json:"files"`
}

func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (entities.DriveFolder, error) {
	if c.mockMode {
		id := "mock-folder-" + uuid.NewString()
		return entities.DriveFolder{ID: id, Name: name, URL: "https://drive.google.com/drive/folders/" + id}, nil
	}

	meta := map[string]any{"name": name, "mimeType": folderMimeType}
	if parentID != "" {
		meta["parents"] = []string{parentID}
	}
	body, err := json.Marshal(meta)
	if err != nil {
		return entities.DriveFolder{}, err
	}

	var res fileResource
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/files?fields=id,name,webViewLink", "application/json", bytes.NewReader(body), &res); err != nil {
		return entities.DriveFolder{}, err
	}
	return entities.DriveFolder{ID: res.ID, Name: res.Name, URL: res.WebViewLink}, nil
}

// findFolder resolves a child folder by exact name, skipping trashed entries.
func (c *Client) findFolder(ctx context.Context, name, parentID string) (entities.DriveFolder, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), folderMimeType)
	if parentID != "" {
		q += fmt.Sprintf(" and '%s' in parents", parentID)
	}

	u := c.baseURL + "/files?fields=files(id,name,webViewLink)&q=" + url.QueryEscape(q)
	var list fileList
	if err := c.do(ctx, http.MethodGet, u, "", nil, &list); err != nil {
		return entities.DriveFolder{}, err
	}
	if len(list.Files) == 0 {
		return entities.DriveFolder{}, nil
	}
	f := list.Files[0]
	return entities.DriveFolder{ID: f.ID, Name: f.Name, URL: f.WebViewLink}, nil
}

func (c *Client) ensureFolder(ctx context.Context, name, parentID string) (entities.DriveFolder, error) {
	if c.mockMode {
		return c.CreateFolder(ctx, name, parentID)
	}
	found, err := c.findFolder(ctx, name, parentID)
	if err != nil {
		return entities.DriveFolder{}, err
	}
	if found.ID != "" {
		return found, nil
	}
	return c.CreateFolder(ctx, name, parentID)
}

// CreateCustomerFolders builds Root > Customer > Order > {Uploads, Translated},
// reusing folders that already exist.
func (c *Client) CreateCustomerFolders(ctx context.Context, customerName, orderID string) (entities.CustomerFolders, error) {
	customer, err := c.ensureFolder(ctx, customerName, c.rootID)
	if err != nil {
		return entities.CustomerFolders{}, fmt.Errorf("customer folder: %w", err)
	}
	order, err := c.ensureFolder(ctx, orderID, customer.ID)
	if err != nil {
		return entities.CustomerFolders{}, fmt.Errorf("order folder: %w", err)
	}
	uploads, err := c.ensureFolder(ctx, "Uploads", order.ID)
	if err != nil {
		return entities.CustomerFolders{}, fmt.Errorf("uploads folder: %w", err)
	}
	translated, err := c.ensureFolder(ctx, "Translated", order.ID)
	if err != nil {
		return entities.CustomerFolders{}, fmt.Errorf("translated folder: %w", err)
	}
	return entities.CustomerFolders{
		Customer:   customer,
		Order:      order,
		Uploads:    uploads,
		Translated: translated,
	}, nil
}

func (c *Client) UploadFile(ctx context.Context, content []byte, mimeType, folderID, name string) (entities.DriveFile, error) {
	if c.mockMode {
		id := "mock-file-" + uuid.NewString()
		return entities.DriveFile{
			ID:       id,
			Name:     name,
			MimeType: mimeType,
			ViewURL:  "https://drive.google.com/file/d/" + id + "/view",
		}, nil
	}

	meta := map[string]any{"name": name}
	if folderID != "" {
		meta["parents"] = []string{folderID}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return entities.DriveFile{}, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	part, err := w.CreatePart(metaHeader)
	if err != nil {
		return entities.DriveFile{}, err
	}
	if _, err := part.Write(metaJSON); err != nil {
		return entities.DriveFile{}, err
	}

	fileHeader := textproto.MIMEHeader{}
	if mimeType != "" {
		fileHeader.Set("Content-Type", mimeType)
	}
	part, err = w.CreatePart(fileHeader)
	if err != nil {
		return entities.DriveFile{}, err
	}
	if _, err := part.Write(content); err != nil {
		return entities.DriveFile{}, err
	}
	if err := w.Close(); err != nil {
		return entities.DriveFile{}, err
	}

	u := c.uplURL + "?uploadType=multipart&fields=id,name,mimeType,webViewLink,webContentLink"
	var res fileResource
	contentType := "multipart/related; boundary=" + w.Boundary()
	if err := c.do(ctx, http.MethodPost, u, contentType, &buf, &res); err != nil {
		return entities.DriveFile{}, err
	}
	return entities.DriveFile{
		ID:          res.ID,
		Name:        res.Name,
		MimeType:    res.MimeType,
		ViewURL:     res.WebViewLink,
		DownloadURL: res.WebContentLink,
	}, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if c.mockMode {
		return nil
	}
	return c.do(ctx, http.MethodDelete, c.baseURL+"/files/"+url.PathEscape(fileID), "", nil, nil)
}

func (c *Client) ListFiles(ctx context.Context, folderID string) ([]entities.DriveFile, error) {
	if c.mockMode {
		return []entities.DriveFile{}, nil
	}

	q := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	u := c.baseURL + "/files?fields=files(id,name,mimeType,webViewLink,webContentLink)&q=" + url.QueryEscape(q)
	var list fileList
	if err := c.do(ctx, http.MethodGet, u, "", nil, &list); err != nil {
		return nil, err
	}

	files := make([]entities.DriveFile, 0, len(list.Files))
	for _, f := range list.Files {
		files = append(files, entities.DriveFile{
			ID:          f.ID,
			Name:        f.Name,
			MimeType:    f.MimeType,
			ViewURL:     f.WebViewLink,
			DownloadURL: f.WebContentLink,
		})
	}
	return files, nil
}

func (c *Client) do(ctx context.Context, method, url, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn("drive api error",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", payload))
		return fmt.Errorf("drive api: status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// escapeQuery escapes single quotes inside a Drive query literal.
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
