package feed

import (
	"encoding/json"
	"strconv"

	"esnaftaucuz/internal/domain/entity"

	"github.com/pkg/errors"
)

// Raw rows arrive from heterogeneous producers that disagree on key naming.
// All aliasing is resolved here, once; everything past this point sees only
// the canonical keys.
const (
	keyID            = "id"
	keyIDAlias       = "_id"
	keyVerified      = "is_verified"
	keyVerifiedAlias = "isVerified"
)

// NormalizeRecord converts a raw change-feed row into its canonical form.
// It resolves the id/_id and is_verified/isVerified aliases, preferring the
// canonical key when both are present, and rewrites the column map so that
// only canonical keys remain.
func NormalizeRecord(raw map[string]any) (entity.FeedRecord, error) {
	id, ok := extractID(raw)
	if !ok {
		return entity.FeedRecord{}, errors.New("feed record has no id")
	}

	verified := extractVerified(raw)

	columns := make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case keyIDAlias:
			key = keyID
		case keyVerifiedAlias:
			key = keyVerified
		}
		if _, exists := columns[key]; exists {
			continue
		}
		columns[key] = value
	}
	columns[keyID] = id
	columns[keyVerified] = verified

	return entity.FeedRecord{
		ID:         id,
		IsVerified: verified,
		Columns:    columns,
	}, nil
}

func extractID(raw map[string]any) (string, bool) {
	for _, key := range []string{keyID, keyIDAlias} {
		value, ok := raw[key]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case string:
			if v != "" {
				return v, true
			}
		case json.Number:
			return v.String(), true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		case int:
			return strconv.Itoa(v), true
		case int64:
			return strconv.FormatInt(v, 10), true
		}
	}

	return "", false
}

func extractVerified(raw map[string]any) bool {
	for _, key := range []string{keyVerified, keyVerifiedAlias} {
		if value, ok := raw[key]; ok {
			if b, isBool := value.(bool); isBool {
				return b
			}
		}
	}

	return false
}
