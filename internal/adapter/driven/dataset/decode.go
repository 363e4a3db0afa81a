// Package dataset provides the DatasetRepository implementations that read the
// budget data file from disk, over HTTP or from S3.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/diillson/budget-dashboard-go/internal/domain/entity"
	"github.com/diillson/budget-dashboard-go/internal/shared/types"
)

// maxPayloadBytes limita o tamanho do arquivo de dados aceito.
const maxPayloadBytes = 32 << 20

// Decode parses a data payload: a JSON object mapping dataset names to arrays of objects.
// Top-level values that are not arrays, and array elements that are not objects, are skipped.
func Decode(r io.Reader) (entity.Datasets, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading data payload: %w", err)
	}
	if len(data) > maxPayloadBytes {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", types.ErrInvalidPayload, maxPayloadBytes)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidPayload, err)
	}
	if top == nil {
		return nil, types.ErrInvalidPayload
	}

	datasets := make(entity.Datasets, len(top))
	for name, raw := range top {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}

		records := make([]entity.RawRecord, 0, len(items))
		for _, item := range items {
			dec := json.NewDecoder(bytes.NewReader(item))
			dec.UseNumber()

			var obj map[string]any
			if err := dec.Decode(&obj); err != nil || obj == nil {
				continue
			}
			records = append(records, entity.RawRecord(obj))
		}
		datasets[name] = records
	}

	return datasets, nil
}
