package event

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// hashEnvelope fixes the field order of the hash input.
type hashEnvelope struct {
	AccountID  string          `json:"account_id"`
	Type       Type            `json:"type"`
	Timestamp  string          `json:"ts"`
	ActorID    string          `json:"actor_id"`
	RequestID  string          `json:"request_id"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload"`
}

// Hash returns the SHA-256 content hash of evt. Seq and hash fields are not
// part of the input.
func Hash(evt Event) (string, error) {
	payload := evt.PayloadJSON
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, payload); err != nil {
		return "", fmt.Errorf("compact payload: %w", err)
	}
	raw, err := json.Marshal(hashEnvelope{
		AccountID:  evt.AccountID,
		Type:       evt.Type,
		Timestamp:  evt.Timestamp.UTC().Format(time.RFC3339Nano),
		ActorID:    evt.ActorID,
		RequestID:  evt.RequestID,
		EntityType: evt.EntityType,
		EntityID:   evt.EntityID,
		Payload:    compact.Bytes(),
	})
	if err != nil {
		return "", fmt.Errorf("encode hash envelope: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// ChainHash links an event hash to the chain hash of its predecessor.
func ChainHash(seq uint64, hash, prevChainHash string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s:%s", seq, hash, prevChainHash)))
	return hex.EncodeToString(sum[:])
}
