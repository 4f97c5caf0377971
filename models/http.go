package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// Registration is the invitation code required to create an account.
	Registration string `json:"registration"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRegistrationRequest is the body of POST /api/auth/verify-registration.
type VerifyRegistrationRequest struct {
	Registration string `json:"registration"`
}

// QuoteItemRequest is the body of create/update calls on the services and
// inputs collections. The owner id never comes from the body; it is always
// taken from the authenticated request context.
type QuoteItemRequest struct {
	OriginalID       string   `json:"originalId"`
	Item             string   `json:"item"`
	Unit             string   `json:"unit"`
	SupplierPrice    float64  `json:"priceFornecedor"`
	AssemblyPrice    float64  `json:"precoMontagem"`
	AdoptedPrice     float64  `json:"precoAdotado"`
	AdoptedAverage   *float64 `json:"mediaAdotada"`
	SanitizedAverage *float64 `json:"mediaSaneada"`
	LowestValue      *float64 `json:"menorValor"`
	ArithmeticMean   *float64 `json:"mediaAritmetica"`
	Median           *float64 `json:"mediana"`
	Vendor1          *float64 `json:"empresa1"`
	Vendor2          *float64 `json:"empresa2"`
	Vendor3          *float64 `json:"empresa3"`
	Vendor4          *float64 `json:"empresa4"`
	Vendor5          *float64 `json:"empresa5"`
	Vendor6          *float64 `json:"empresa6"`
	Justification    *string  `json:"justificativa"`
	ElapsedMonths    *int     `json:"tempoPassado"`
	PreviousMonth    *string  `json:"mesAnterior"`
	PreviousIndex    *float64 `json:"indiceAnterior"`
	CurrentIndex     *float64 `json:"indiceAtual"`
}

// QuoteItem materializes the request into a QuoteItem owned by userID.
func (r QuoteItemRequest) QuoteItem(userID int64) QuoteItem {
	return QuoteItem{
		UserID:           userID,
		OriginalID:       r.OriginalID,
		Item:             r.Item,
		Unit:             r.Unit,
		SupplierPrice:    r.SupplierPrice,
		AssemblyPrice:    r.AssemblyPrice,
		AdoptedPrice:     r.AdoptedPrice,
		AdoptedAverage:   r.AdoptedAverage,
		SanitizedAverage: r.SanitizedAverage,
		LowestValue:      r.LowestValue,
		ArithmeticMean:   r.ArithmeticMean,
		Median:           r.Median,
		Vendor1:          r.Vendor1,
		Vendor2:          r.Vendor2,
		Vendor3:          r.Vendor3,
		Vendor4:          r.Vendor4,
		Vendor5:          r.Vendor5,
		Vendor6:          r.Vendor6,
		Justification:    r.Justification,
		ElapsedMonths:    r.ElapsedMonths,
		PreviousMonth:    r.PreviousMonth,
		PreviousIndex:    r.PreviousIndex,
		CurrentIndex:     r.CurrentIndex,
	}
}

// SpreadsheetRequest is the body of create/update calls on the spreadsheets
// collection.
type SpreadsheetRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	FilePath    *string `json:"filePath"`
	FileType    *string `json:"fileType"`
	FileSize    *int64  `json:"fileSize"`
	IsShared    bool    `json:"isShared"`
}

// Spreadsheet materializes the request into a Spreadsheet owned by userID.
func (r SpreadsheetRequest) Spreadsheet(userID int64) Spreadsheet {
	return Spreadsheet{
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		FilePath:    r.FilePath,
		FileType:    r.FileType,
		FileSize:    r.FileSize,
		IsShared:    r.IsShared,
	}
}
