package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zanzibarboats/booking-system/internal/core/domain"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
)

const collectionTables = "tables"

// tableDoc holds one whole table: header row plus data rows in append order.
type tableDoc struct {
	Name    string     `bson:"_id"`
	Headers []string   `bson:"headers"`
	Rows    [][]string `bson:"rows"`
}

// TableStore persists named tables as single documents, one per table. Row
// writes replace the whole row in one update, so readers observe either the
// pre- or post-write state of a row, never a mix.
type TableStore struct {
	col *mongo.Collection
}

func NewTableStore(db *mongo.Database) *TableStore {
	return &TableStore{col: db.Collection(collectionTables)}
}

// ReadTable returns the header row followed by every data row.
func (s *TableStore) ReadTable(ctx context.Context, name string) ([]ports.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc tableDoc
	if err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTableNotFound, name)
		}
		return nil, fmt.Errorf("read table %s: %w", name, err)
	}

	rows := make([]ports.Row, 0, len(doc.Rows)+1)
	rows = append(rows, ports.Row(doc.Headers))
	for _, r := range doc.Rows {
		rows = append(rows, ports.Row(r))
	}
	return rows, nil
}

func (s *TableStore) AppendRow(ctx context.Context, name string, row ports.Row) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$push": bson.M{"rows": []string(row)}},
	)
	if err != nil {
		return fmt.Errorf("append to table %s: %w", name, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTableNotFound, name)
	}
	return nil
}

// WriteRow replaces data row index in full. The positional $set keeps the
// replacement atomic from the reader's perspective.
func (s *TableStore) WriteRow(ctx context.Context, name string, index int, row ports.Row) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	field := fmt.Sprintf("rows.%d", index)
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": name, field: bson.M{"$exists": true}},
		bson.M{"$set": bson.M{field: []string(row)}},
	)
	if err != nil {
		return fmt.Errorf("write row %d of table %s: %w", index, name, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("table %s has no row %d", name, index)
	}
	return nil
}

// EnsureTables creates any missing table documents with their canonical
// header rows. A failure here is unrecoverable: without a backing store no
// operation can proceed, so the caller aborts startup.
func (s *TableStore) EnsureTables(ctx context.Context, headers map[string]ports.Row) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for name, hdr := range headers {
		_, err := s.col.UpdateOne(ctx,
			bson.M{"_id": name},
			bson.M{"$setOnInsert": bson.M{"headers": []string(hdr), "rows": [][]string{}}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("ensure table %s: %w", name, err)
		}
	}
	return nil
}
