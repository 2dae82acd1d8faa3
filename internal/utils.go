package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateRequestID creates a unique ID for one translation request based
// on timestamp and input text.
// Format: epochMillis_md5(text)[:8]
func GenerateRequestID(text string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(text))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}
