package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"strings"
)

type cursorData struct {
	Datetime string `json:"datetime"`
	ID       int    `json:"id,omitempty"`
}

func hmacSignature(encoded string) string {
	mac := hmac.New(sha256.New, []byte(os.Getenv("CURSOR_SECRET_KEY")))
	mac.Write([]byte(encoded))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func verifySignature(encoded string, signature string) bool {
	expected := hmacSignature(encoded)
	return hmac.Equal([]byte(signature), []byte(expected))
}

// EncodeCursor builds a signed keyset cursor from the last row of a page.
// The signature keeps clients from forging positions into other result sets.
func EncodeCursor(date string, id int) string {
	data := cursorData{Datetime: date, ID: id}
	jsonData, _ := json.Marshal(data)
	encoded := base64.StdEncoding.EncodeToString(jsonData)

	return encoded + "." + hmacSignature(encoded)
}

func DecodeCursor(token string) (string, int, error) {
	parts := strings.Split(token, ".")

	if len(parts) != 2 {
		return "", 0, errors.New("invalid cursor format")
	}

	if !verifySignature(parts[0], parts[1]) {
		return "", 0, errors.New("invalid cursor signature")
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[0])

	if err != nil {
		return "", 0, err
	}

	var cursor cursorData
	json.Unmarshal(decoded, &cursor)

	return cursor.Datetime, cursor.ID, nil
}
