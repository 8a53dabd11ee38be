package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldBackend       = "backend"
	FieldSlot          = "slot"
	FieldTransactionID = "id"
	FieldYear          = "year"
	FieldMonth         = "month"
	FieldCount         = "count"
	FieldSkipped       = "skipped"
	FieldAmountCents   = "amount_cents"
	FieldCategory      = "category"
	FieldType          = "type"
	FieldFile          = "file"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentCLI      = "cli"
	ComponentLedger   = "ledger"
	ComponentStore    = "store"
	ComponentBackend  = "backend"
	ComponentExchange = "exchange"
	ComponentCache    = "cache"
)

// Operations defines standard operation names
const (
	OpAdd     = "add"
	OpEdit    = "edit"
	OpRemove  = "remove"
	OpList    = "list"
	OpSummary = "summary"
	OpExport  = "export"
	OpImport  = "import"
	OpLoad    = "load"
	OpSave    = "save"
	OpStartup = "startup"
)
