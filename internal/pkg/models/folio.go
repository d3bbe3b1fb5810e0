package models

// FolioAuditRequest scopes an audit run to a campus and calendar month.
type FolioAuditRequest struct {
	CampusID int64 `json:"campus_id"`
	Month    int   `json:"month"`
	Year     int   `json:"year"`
	DryRun   bool  `json:"dry_run"`
}

// FolioChange is one before/after correction found by the auditor.
type FolioChange struct {
	TransactionID int64         `json:"transaction_id"`
	Folio         *int64        `json:"folio"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Before        *int64        `json:"before"`
	After         *int64        `json:"after"`
}

// FolioAuditReport is the outcome of an audit run. With DryRun set, changes
// are reported but nothing is written.
type FolioAuditReport struct {
	CampusID              int64         `json:"campus_id"`
	Month                 int           `json:"month"`
	Year                  int           `json:"year"`
	DryRun                bool          `json:"dry_run"`
	TransactionsProcessed int           `json:"transactions_processed"`
	FoliosFixed           int           `json:"folios_fixed"`
	Changes               []FolioChange `json:"changes"`
	Errors                []string      `json:"errors"`
}

// FolioRemapRow is one row of a folio remap import: the stored folio to look
// up, the campus it must belong to, and the replacement value.
type FolioRemapRow struct {
	Row      int   `json:"row"`
	OldFolio int64 `json:"old_folio"`
	CampusID int64 `json:"campus_id"`
	NewFolio int64 `json:"new_folio"`
}

// FolioImportReport summarizes a remap run. Row-level problems land in
// Errors; the apply stage is all-or-nothing.
type FolioImportReport struct {
	Updated  int      `json:"updated"`
	NotFound int      `json:"not_found"`
	Errors   []string `json:"errors"`
}

// Debt is the single linkage this system keeps to the student-debt domain:
// enough to flip a debt's paid status when a transaction settles it.
type Debt struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"student_id" db:"student_id"`
	Paid      bool  `json:"paid" db:"paid"`
}
