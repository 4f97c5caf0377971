package models

import "time"

// Spreadsheet is the metadata record of an uploaded spreadsheet file.
// The binary content itself lives on disk under the owner's uploads
// directory; FilePath stores the file key it was saved under.
type Spreadsheet struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	// FilePath is the file key of the uploaded content, or nil when the
	// record was created without an attached file.
	FilePath *string `json:"filePath,omitempty"`

	// FileType is the extension of the uploaded file without the dot
	// (xlsx, xls, csv).
	FileType *string `json:"fileType,omitempty"`

	FileSize *int64 `json:"fileSize,omitempty"`

	// IsShared marks the spreadsheet as visible in the "shared" listing
	// filter. SharedAt is stamped when the flag first turns true.
	IsShared bool       `json:"isShared"`
	SharedAt *time.Time `json:"sharedAt,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the Spreadsheet model.
func (s Spreadsheet) TableName() string {
	return "spreadsheets"
}

// SpreadsheetFilter narrows a spreadsheet listing. Zero values mean
// "no constraint".
type SpreadsheetFilter struct {
	// Search is a case-insensitive substring matched against name and
	// description.
	Search string

	// Sort orders by creation time: "recentes" (default, newest first)
	// or "antigos" (oldest first).
	Sort string

	// SharedOnly limits the listing to shared spreadsheets
	// (the "compartilhadas" category filter).
	SharedOnly bool
}
