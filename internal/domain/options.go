package domain

import "fmt"

// Options is the configuration surface consumed by the conversion and merge
// engines. It is built once by the CLI layer and treated as read-only, so
// parallel batch workers can share it without locking.
type Options struct {
	// Strict adds additionalProperties: false to object schemas that declare
	// at least one property.
	Strict bool

	// CleanOutput suppresses synthesized descriptions; only text carried by an
	// explicit xs:documentation annotation survives.
	CleanOutput bool

	// DraftVersion selects the JSON Schema draft ($schema URI): 4, 6 or 7.
	DraftVersion int

	// APITransactionType narrows the shared transaction-type enumeration to
	// the literal of one business operation (e.g. "Buy"). Empty means no
	// narrowing.
	APITransactionType string

	// FieldMappings maps document field names to catalog keys. Consulted
	// before case-insensitive resolution.
	FieldMappings map[string]string
}

// TransactionTypeLiterals maps an API flavor to the single transaction-type
// code that flavor is allowed to carry.
var TransactionTypeLiterals = map[string]string{
	"Buy":      "1",
	"Sell":     "5",
	"ICT":      "6",
	"Transfer": "7",
	"Switch":   "8",
}

// TransactionTypeKey is the catalog key of the shared transaction-type
// enumeration that narrowing applies to.
const TransactionTypeKey = "TrxnTyp"

// Validate checks option values that have a closed domain.
func (o Options) Validate() error {
	switch o.DraftVersion {
	case 0, 4, 6, 7:
	default:
		return fmt.Errorf("unsupported JSON Schema draft version %d (supported: 4, 6, 7)", o.DraftVersion)
	}
	if o.APITransactionType != "" {
		if _, ok := TransactionTypeLiterals[o.APITransactionType]; !ok {
			return fmt.Errorf("unknown API transaction type %q", o.APITransactionType)
		}
	}
	return nil
}
