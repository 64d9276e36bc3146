package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileNameMissing = errors.New("file name missing")
)

// UploadDocumentCommand carries one file upload bound to an order.
type UploadDocumentCommand struct {
	OrderID  string
	FileName string
	MimeType string
	Content  []byte
}

// IDocumentUseCase handles order attachments and the AI helpers that read
// them. Files live in the drive collaborator; the order only keeps
// (name, url) references.
type IDocumentUseCase interface {
	Upload(ctx context.Context, actor lifecycle.Actor, cmd UploadDocumentCommand) (entities.Order, entities.DriveFile, error)
	ListDocuments(ctx context.Context, actor lifecycle.Actor, orderID string) ([]entities.Attachment, error)
	DeleteFile(ctx context.Context, actor lifecycle.Actor, fileID string) error
	Extract(ctx context.Context, actor lifecycle.Actor, orderID string, image []byte, mimeType, documentTypeHint string) (entities.Extraction, error)
	Translate(ctx context.Context, actor lifecycle.Actor, text, fromLang, toLang string) (string, error)
}

type DocumentUseCase struct {
	orders interfaces.IOrderRepository
	drive  interfaces.IDriveService
	ai     interfaces.IAIService
	logger *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(orders interfaces.IOrderRepository, drive interfaces.IDriveService, ai interfaces.IAIService, logger *zap.Logger) *DocumentUseCase {
	return &DocumentUseCase{
		orders: orders,
		drive:  drive,
		ai:     ai,
		logger: logger.With(zap.String("usecase", "document")),
	}
}

func (u *DocumentUseCase) loadOrder(ctx context.Context, actor lifecycle.Actor, orderID string) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !actor.IsAdmin && order.Phone != actor.Phone {
		return entities.Order{}, ErrAccessDenied
	}
	return order, nil
}

// Upload stores a file in the order's Uploads folder and appends the
// reference to the order's document list. Folder resolution is get-or-create,
// so uploads work even when order creation could not provision folders.
func (u *DocumentUseCase) Upload(ctx context.Context, actor lifecycle.Actor, cmd UploadDocumentCommand) (entities.Order, entities.DriveFile, error) {
	if len(cmd.Content) == 0 {
		return entities.Order{}, entities.DriveFile{}, ErrEmptyFile
	}
	if strings.TrimSpace(cmd.FileName) == "" {
		return entities.Order{}, entities.DriveFile{}, ErrFileNameMissing
	}

	order, err := u.loadOrder(ctx, actor, cmd.OrderID)
	if err != nil {
		return entities.Order{}, entities.DriveFile{}, err
	}

	folders, err := u.drive.CreateCustomerFolders(ctx, order.CustomerName, order.ID)
	if err != nil {
		return entities.Order{}, entities.DriveFile{}, fmt.Errorf("resolving drive folders: %w", err)
	}

	file, err := u.drive.UploadFile(ctx, cmd.Content, cmd.MimeType, folders.Uploads.ID, cmd.FileName)
	if err != nil {
		return entities.Order{}, entities.DriveFile{}, fmt.Errorf("uploading file: %w", err)
	}

	updated, err := u.orders.AppendDocuments(ctx, order.ID, []entities.Attachment{
		{Name: file.Name, URL: file.ViewURL},
	})
	if err != nil {
		// The file is already in the drive; losing the reference is worse
		// than returning an error, so surface it.
		return entities.Order{}, entities.DriveFile{}, fmt.Errorf("recording attachment: %w", err)
	}
	return updated, file, nil
}

func (u *DocumentUseCase) ListDocuments(ctx context.Context, actor lifecycle.Actor, orderID string) ([]entities.Attachment, error) {
	order, err := u.loadOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if order.Documents == nil {
		return []entities.Attachment{}, nil
	}
	return order.Documents, nil
}

// DeleteFile removes a file from the drive. Admin only; the order's document
// list is not rewritten, stale references are tolerated.
func (u *DocumentUseCase) DeleteFile(ctx context.Context, actor lifecycle.Actor, fileID string) error {
	if !actor.IsAdmin {
		return ErrAccessDenied
	}
	return u.drive.DeleteFile(ctx, fileID)
}

// Extract runs OCR-style text extraction over an uploaded image and records
// the result as an order note. The note write is best effort; extraction
// output never gates any order operation.
func (u *DocumentUseCase) Extract(ctx context.Context, actor lifecycle.Actor, orderID string, image []byte, mimeType, documentTypeHint string) (entities.Extraction, error) {
	if len(image) == 0 {
		return entities.Extraction{}, ErrEmptyFile
	}

	order, err := u.loadOrder(ctx, actor, orderID)
	if err != nil {
		return entities.Extraction{}, err
	}

	extraction, err := u.ai.ExtractText(ctx, image, mimeType, documentTypeHint)
	if err != nil {
		return entities.Extraction{}, fmt.Errorf("extracting text: %w", err)
	}

	notes := fmt.Sprintf("%s\n\nExtracted text (%s):\n%s", order.Notes, extraction.Language, extraction.RawText)
	if _, err := u.orders.Update(ctx, order.ID, interfaces.OrderUpdate{Notes: &notes}); err != nil {
		u.logger.Warn("recording extraction note failed",
			zap.String("order_id", order.ID), zap.Error(err))
	}
	return extraction, nil
}

func (u *DocumentUseCase) Translate(ctx context.Context, actor lifecycle.Actor, text, fromLang, toLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("text required")
	}
	return u.ai.TranslateText(ctx, text, fromLang, toLang)
}
