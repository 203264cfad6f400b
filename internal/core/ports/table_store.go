package ports

import "context"

// Row is a single table row. Cell order follows the table's header row, which
// is fixed per table at creation time; every cell is a scalar rendered as a
// string (numbers and ISO-8601 timestamps included).
type Row []string

// TableStore reads and writes whole named tables against the backing medium.
// The first row returned by ReadTable is always the header row. Operations
// against a nonexistent table fail with domain.ErrTableNotFound, which is a
// configuration error, not a user-facing condition.
type TableStore interface {
	ReadTable(ctx context.Context, name string) ([]Row, error)
	AppendRow(ctx context.Context, name string, row Row) error
	// WriteRow replaces data row index (zero-based, header excluded) in full;
	// there are no partial-cell writes.
	WriteRow(ctx context.Context, name string, index int, row Row) error
}

// TableCache is a read-through, time-boxed view over TableStore reads. A miss
// or an expired entry always falls back to the store, never to an error, and
// the cache itself never writes. Every successful write-path operation must
// call Invalidate on the touched table before reporting success.
type TableCache interface {
	GetTable(ctx context.Context, name string) ([]Row, error)
	Invalidate(ctx context.Context, name string)
}
