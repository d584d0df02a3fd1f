package utils

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/oklog/ulid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short random id used as a synthetic post key.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

func NewUUID() string {
	return uuid.NewString()
}

// NewBatchID returns a time-ordered id for an upload batch.
func NewBatchID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), rand.Reader).String()
}
