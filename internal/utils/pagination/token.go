package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

const (
	// DefaultLimit is used when the caller does not ask for a page size.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100
)

// Cursor identifies the last row of a page of transactions. Rows are ordered by
// (created_at DESC, seq DESC), so Seq breaks ties between rows written in the same instant.
type Cursor struct {
	CreatedAt time.Time
	Seq       int64
}

// EncodeToken creates a base64 encoded token from a creation time and sequence number.
func EncodeToken(createdAt time.Time, seq int64) string {
	tokenStr := fmt.Sprintf("%s|%d", createdAt.UTC().Format(timeFormat), seq)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a Cursor.
// Malformed tokens are reported as apperrors.ErrValidation.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (base64 decode)", apperrors.ErrValidation)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (created_at parse)", apperrors.ErrValidation)
	}

	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (seq parse)", apperrors.ErrValidation)
	}

	return Cursor{CreatedAt: createdAt, Seq: seq}, nil
}

// After reports whether a row at (createdAt, seq) sorts after c in newest-first order,
// i.e. whether it belongs to the page following c.
func (c Cursor) After(createdAt time.Time, seq int64) bool {
	if createdAt.Equal(c.CreatedAt) {
		return seq < c.Seq
	}
	return createdAt.Before(c.CreatedAt)
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
