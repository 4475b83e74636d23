// lookup/normalize.go
package lookup

import (
	"encoding/json"

	"github.com/TheWhiteHat1/osint-bot-host/models"
)

// NormalizeRecords flattens the three response shapes the upstream APIs are
// known to return (a single object, a bare array, or an object wrapping an
// array under "data") into a list of records. JSON null, an empty object
// and an empty array all normalize to an empty list. Array elements that are
// not objects are dropped. A body that is not valid JSON is an error.
func NormalizeRecords(body []byte) ([]models.Record, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return recordsFromList(v), nil
	case map[string]interface{}:
		if inner, ok := v["data"].([]interface{}); ok {
			return recordsFromList(inner), nil
		}
		if len(v) == 0 {
			return nil, nil
		}
		return []models.Record{models.Record(v)}, nil
	default:
		// Scalar top-level values (a bare string or number) carry no fields.
		return nil, nil
	}
}

func recordsFromList(list []interface{}) []models.Record {
	records := make([]models.Record, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]interface{}); ok && len(obj) > 0 {
			records = append(records, models.Record(obj))
		}
	}
	return records
}
