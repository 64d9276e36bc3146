package interfaces

import (
	"context"

	"nct_portal/internal/domain/entities"
)

// IDriveService abstracts the file storage collaborator (Google Drive).
//
// Folder creation during order creation is best-effort: callers log failures
// and carry on. File deletion is an admin-only destructive operation.
type IDriveService interface {
	CreateFolder(ctx context.Context, name, parentID string) (entities.DriveFolder, error)
	CreateCustomerFolders(ctx context.Context, customerName, orderID string) (entities.CustomerFolders, error)
	UploadFile(ctx context.Context, content []byte, mimeType, folderID, name string) (entities.DriveFile, error)
	DeleteFile(ctx context.Context, fileID string) error
	ListFiles(ctx context.Context, folderID string) ([]entities.DriveFile, error)
}
