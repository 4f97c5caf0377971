package models

import "time"

// AuthResponse is the success payload of register and login.
type AuthResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// VerifyRegistrationResponse reports whether a registration code is still
// redeemable without consuming it.
type VerifyRegistrationResponse struct {
	IsAllowed bool `json:"isAllowed"`
}

// MessageResponse is the generic {message} body used for business-rule
// failures and for delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse is the payload of a successful file upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`

	// FileKey is the randomized stored name ("<uuid>_<original-name>") the
	// client must present to download the file later.
	FileKey  string `json:"fileKey"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
	Message  string `json:"message"`
}

// RecentEntry is one row of the dashboard "recent activity" blocks.
type RecentEntry struct {
	ID              int64     `json:"id"`
	OriginalID      string    `json:"originalId,omitempty"`
	Item            string    `json:"item,omitempty"`
	Name            string    `json:"name,omitempty"`
	FilePath        string    `json:"filePath,omitempty"`
	AdoptedPrice    float64   `json:"precoAdotado,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	ResponsibleName string    `json:"responsibleName"`
}

// DashboardSummary aggregates per-user counts and the three most recent rows
// of each collection.
type DashboardSummary struct {
	ServicesCount      int64         `json:"servicesCount"`
	InputsCount        int64         `json:"inputsCount"`
	SpreadsheetsCount  int64         `json:"spreadsheetsCount"`
	RecentServices     []RecentEntry `json:"recentServices"`
	RecentInputs       []RecentEntry `json:"recentInputs"`
	RecentSpreadsheets []RecentEntry `json:"recentSpreadsheets"`
}

// DashboardStatistics aggregates per-user totals and averages of the
// adopted prices. Averages over empty collections are reported as zero.
type DashboardStatistics struct {
	TotalServicesValue  float64 `json:"totalServicesValue"`
	TotalInputsValue    float64 `json:"totalInputsValue"`
	AverageServicePrice float64 `json:"averageServicePrice"`
	AverageInputPrice   float64 `json:"averageInputPrice"`
}

// StoredFile describes an uploaded file persisted on disk.
type StoredFile struct {
	// Key is the stored name under the owner's uploads directory.
	Key string

	// OriginalName is the client-supplied filename.
	OriginalName string

	// Extension is the lowercase extension without the dot.
	Extension string

	Size int64
}
